package adapters

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// ChEBI answers with SOAP-style envelopes whose namespaces differ between
// deployments, so elements are matched on their local name at any depth.

type listElement struct {
	Name *string `xml:"chebiName"`
	ID   *string `xml:"chebiId"`
	Type *string `xml:"type"`
}

type completeEntity struct {
	asciiName string
	smiles    string
	hasSmiles bool
}

func decodeListElements(body []byte) ([]listElement, error) {
	var elements []listElement
	err := walkXML(body, func(decoder *xml.Decoder, start xml.StartElement) error {
		if start.Name.Local != "ListElement" {
			return nil
		}
		var element listElement
		if err := decoder.DecodeElement(&element, &start); err != nil {
			return err
		}
		elements = append(elements, element)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return elements, nil
}

// decodeCompleteEntity keeps the first smiles and chebiAsciiName values.
// Nested parent and child listings reuse other element names.
func decodeCompleteEntity(body []byte) (completeEntity, error) {
	var entity completeEntity
	var hasName bool
	err := walkXML(body, func(decoder *xml.Decoder, start xml.StartElement) error {
		switch start.Name.Local {
		case "smiles":
			if entity.hasSmiles {
				return nil
			}
			var value string
			if err := decoder.DecodeElement(&value, &start); err != nil {
				return err
			}
			value = strings.TrimSpace(value)
			entity.smiles = value
			entity.hasSmiles = value != ""
			return nil
		case "chebiAsciiName":
			if hasName {
				return nil
			}
			var value string
			if err := decoder.DecodeElement(&value, &start); err != nil {
				return err
			}
			entity.asciiName = strings.TrimSpace(value)
			hasName = true
			return nil
		}
		return nil
	})
	if err != nil {
		return completeEntity{}, err
	}
	return entity, nil
}

var errNotXML = errors.New("response body contains no XML elements")

// walkXML streams every start element to visit, which may consume the
// element with DecodeElement. A blank body is an empty document; text
// without any element is rejected.
func walkXML(body []byte, visit func(*xml.Decoder, xml.StartElement) error) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	decoder := xml.NewDecoder(bytes.NewReader(body))
	sawElement := false
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		sawElement = true
		if err := visit(decoder, start); err != nil {
			return err
		}
	}
	if !sawElement {
		return errNotXML
	}
	return nil
}

func textValue(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}
