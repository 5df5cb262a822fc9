package document

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

const hclFilename = "document.hcl"

// hclDocument edits an HCL file in place through hclwrite, which keeps the
// original formatting and comments. Path segments before the last one name
// blocks; the last one names an attribute. Indentation is always canonical,
// so the spacing level does not apply.
type hclDocument struct {
	file *hclwrite.File
}

func decodeHCL(data []byte) (Document, error) {
	// hclwrite only checks the token structure; parse with hclsyntax too so
	// invalid documents fail here.
	if _, diags := hclsyntax.ParseConfig(data, hclFilename, hcl.InitialPos); diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %w", diags)
	}
	file, diags := hclwrite.ParseConfig(data, hclFilename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %w", diags)
	}
	return &hclDocument{file: file}, nil
}

func (d *hclDocument) Get(path ...string) (string, bool) {
	if len(path) == 0 {
		return "", false
	}

	body := d.file.Body()
	for _, name := range path[:len(path)-1] {
		block := body.FirstMatchingBlock(name, nil)
		if block == nil {
			return "", false
		}
		body = block.Body()
	}

	attr := body.GetAttribute(path[len(path)-1])
	if attr == nil {
		return "", false
	}
	return literalString(attr.Expr().BuildTokens(nil).Bytes())
}

func (d *hclDocument) Set(value string, path ...string) error {
	if len(path) == 0 {
		return errors.New("empty path")
	}

	body := d.file.Body()
	for _, name := range path[:len(path)-1] {
		block := body.FirstMatchingBlock(name, nil)
		if block == nil {
			block = body.AppendNewBlock(name, nil)
		}
		body = block.Body()
	}
	body.SetAttributeValue(path[len(path)-1], cty.StringVal(value))
	return nil
}

func (d *hclDocument) Encode() ([]byte, error) {
	return d.file.Bytes(), nil
}

// literalString evaluates an attribute expression without any variables and
// returns its value when it is a known, non-null string.
func literalString(src []byte) (string, bool) {
	expr, diags := hclsyntax.ParseExpression(src, hclFilename, hcl.InitialPos)
	if diags.HasErrors() {
		return "", false
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() || !val.IsKnown() || val.IsNull() || !val.Type().Equals(cty.String) {
		return "", false
	}
	return val.AsString(), true
}
