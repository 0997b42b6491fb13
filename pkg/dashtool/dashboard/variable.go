// SPDX-License-Identifier: AGPL-3.0-only

package dashboard

type VariableType string

const (
	VariableTypeQuery    VariableType = "query"
	VariableTypeCustom   VariableType = "custom"
	VariableTypeConstant VariableType = "constant"
	VariableTypeTextbox  VariableType = "textbox"
)

// Variable is one of *QueryVariable, *CustomVariable, *ConstantVariable or *TextboxVariable.
type Variable interface {
	VariableName() string
	VariableType() VariableType
}

type QueryVariable struct {
	Type       VariableType `json:"type"`
	Name       string       `json:"name"`
	Definition string       `json:"definition"`
	AllValue   string       `json:"allValue,omitempty"`
	AllOption  bool         `json:"allOption"`
	Multi      bool         `json:"multi"`
	Reg        string       `json:"reg,omitempty"`
}

type CustomVariable struct {
	Type       VariableType `json:"type"`
	Name       string       `json:"name"`
	Definition string       `json:"definition"`
	AllValue   string       `json:"allValue,omitempty"`
	AllOption  bool         `json:"allOption"`
	Multi      bool         `json:"multi"`
}

type ConstantVariable struct {
	Type       VariableType `json:"type"`
	Name       string       `json:"name"`
	Definition string       `json:"definition"`
}

type TextboxVariable struct {
	Type         VariableType `json:"type"`
	Name         string       `json:"name"`
	DefaultValue string       `json:"defaultValue,omitempty"`
}

func (v *QueryVariable) VariableName() string    { return v.Name }
func (v *CustomVariable) VariableName() string   { return v.Name }
func (v *ConstantVariable) VariableName() string { return v.Name }
func (v *TextboxVariable) VariableName() string  { return v.Name }

func (*QueryVariable) VariableType() VariableType    { return VariableTypeQuery }
func (*CustomVariable) VariableType() VariableType   { return VariableTypeCustom }
func (*ConstantVariable) VariableType() VariableType { return VariableTypeConstant }
func (*TextboxVariable) VariableType() VariableType  { return VariableTypeTextbox }
