package connection

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/goto/approvalflow/domain"
	"github.com/mitchellh/mapstructure"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

const envelopeSchemaURL = "approvalflow://schemas/envelope.json"

const envelopeSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["type"],
	"properties": {
		"type": {"type": "string", "minLength": 1}
	}
}`

var ErrMalformedMessage = errors.New("malformed message")

// Parser classifies raw real-time payloads into domain.InboundMessage variants.
type Parser struct {
	envelope *jsonschema.Schema
}

func NewParser() (*Parser, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(envelopeSchema))
	if err != nil {
		return nil, fmt.Errorf("reading envelope schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(envelopeSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("adding envelope schema: %w", err)
	}
	sch, err := c.Compile(envelopeSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compiling envelope schema: %w", err)
	}
	return &Parser{envelope: sch}, nil
}

// Parse returns ErrMalformedMessage for anything that is not the bare text "ping" or a JSON object
// with a string "type".
func (p *Parser) Parse(raw []byte) (domain.InboundMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if string(trimmed) == domain.MessageTypePing {
		return &domain.PingMessage{}, nil
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(trimmed))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	if err := p.envelope.Validate(inst); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	tag, _ := payload["type"].(string)

	var msg domain.InboundMessage
	switch tag {
	case domain.MessageTypeNewRequest:
		msg = &domain.NewRequestMessage{}
	case domain.MessageTypeStatusUpdate:
		msg = &domain.StatusUpdateMessage{}
	case domain.MessageTypeApprovalDecision:
		msg = &domain.ApprovalDecisionMessage{}
	case domain.MessageTypePing:
		return &domain.PingMessage{}, nil
	default:
		return &domain.UnknownMessage{Tag: tag, Raw: append([]byte(nil), trimmed...)}, nil
	}

	if err := decode(payload, msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	return msg, nil
}

func decode(input map[string]interface{}, output interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           output,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}
