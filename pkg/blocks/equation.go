package blocks

import "github.com/notion-sdk/notion-go/internal/jsonmap"

// EquationBlock displays a KaTeX expression on its own line.
type EquationBlock struct {
	leafBlock
	expression string
}

func NewEquation(expression string) EquationBlock {
	return EquationBlock{leafBlock: newLeafBlock(TypeEquation), expression: expression}
}

func EquationFromMap(m map[string]any) (EquationBlock, error) {
	b, content, err := leafBlockFromMap(m, TypeEquation)
	if err != nil {
		return EquationBlock{}, err
	}
	expression, err := jsonmap.String(content, "expression")
	if err != nil {
		return EquationBlock{}, err
	}
	return EquationBlock{leafBlock: b, expression: expression}, nil
}

func (e EquationBlock) Expression() string {
	return e.expression
}

func (e EquationBlock) String() string {
	return e.expression
}

func (e EquationBlock) ToMap() map[string]any {
	return e.toMap(map[string]any{"expression": e.expression})
}

func (e EquationBlock) ToUpdateMap() map[string]any {
	return e.toUpdateMap(map[string]any{"expression": e.expression})
}

func (e EquationBlock) ChangeExpression(expression string) EquationBlock {
	e.metadata = e.metadata.Update()
	e.expression = expression
	return e
}

func (e EquationBlock) Archive() Block {
	return EquationBlock{leafBlock: e.archive(), expression: e.expression}
}
