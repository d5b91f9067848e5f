package entity

// Receipt - the record of one accepted action or hook run, in the order it
// was applied. Replaying receipts from genesis reproduces the state.
type Receipt struct {
	ID        string         `json:"id"`
	Action    string         `json:"action"`
	Hook      bool           `json:"hook,omitempty"`
	Inputs    map[string]any `json:"inputs,omitempty"`
	MsgSender string         `json:"msgSender,omitempty"`
	Block     Block          `json:"block"`
	Events    []Event        `json:"events"`
	Root      string         `json:"root"`
}
