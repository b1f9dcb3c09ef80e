package network

import (
	"bytes"
	"encoding/json"
)

// BodyFormat tells how a response body was formatted for display.
type BodyFormat string

const (
	// FormatJSON bodies were parsed as JSON and re-indented.
	FormatJSON BodyFormat = "json"
	// FormatText bodies are shown exactly as received.
	FormatText BodyFormat = "text"
)

// Body is a response body formatted for display.
type Body struct {
	Format  BodyFormat
	Content string
	// ContentType is the Content-Type the server sent, if any.
	ContentType string
	// Size of the raw body in bytes.
	Size int
}

// jsonSpace is what JSON.parse accepts around a value.
const jsonSpace = " \t\r\n"

// FormatBody formats a raw response body. Bodies that parse as JSON are
// indented with two spaces keeping their key order, everything else,
// including an empty body, is kept verbatim.
func FormatBody(raw []byte, contentType string) Body {
	body := Body{
		Format:      FormatText,
		Content:     string(raw),
		ContentType: contentType,
		Size:        len(raw),
	}

	trimmed := bytes.Trim(raw, jsonSpace)
	if !json.Valid(trimmed) {
		return body
	}

	// Repeated object keys collapse to the last value, in the place of the
	// first one, the way JSON.parse reads them.
	value, repeated, err := decodeOrdered(trimmed)
	if err != nil {
		return body
	}
	if repeated {
		var compact bytes.Buffer
		if err := value.encode(&compact); err != nil {
			return body
		}
		trimmed = compact.Bytes()
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, trimmed, "", "  "); err != nil {
		return body
	}

	body.Format = FormatJSON
	body.Content = buf.String()
	return body
}

// jsonValue is a decoded JSON value keeping the order of object keys.
type jsonValue struct {
	kind    json.Delim
	members []jsonMember
	items   []jsonValue
	scalar  json.Token
}

type jsonMember struct {
	key   string
	value jsonValue
}

func decodeOrdered(data []byte) (jsonValue, bool, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	repeated := false
	value, err := decodeValue(dec, &repeated)
	return value, repeated, err
}

func decodeValue(dec *json.Decoder, repeated *bool) (jsonValue, error) {
	tok, err := dec.Token()
	if err != nil {
		return jsonValue{}, err
	}

	switch tok {
	case json.Delim('{'):
		v := jsonValue{kind: '{'}
		seen := make(map[string]int)
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return jsonValue{}, err
			}
			key, _ := keyTok.(string)

			member, err := decodeValue(dec, repeated)
			if err != nil {
				return jsonValue{}, err
			}

			if i, ok := seen[key]; ok {
				v.members[i].value = member
				*repeated = true
				continue
			}
			seen[key] = len(v.members)
			v.members = append(v.members, jsonMember{key: key, value: member})
		}
		_, err := dec.Token()
		return v, err
	case json.Delim('['):
		v := jsonValue{kind: '['}
		for dec.More() {
			item, err := decodeValue(dec, repeated)
			if err != nil {
				return jsonValue{}, err
			}
			v.items = append(v.items, item)
		}
		_, err := dec.Token()
		return v, err
	}

	return jsonValue{scalar: tok}, nil
}

// encode writes v as compact JSON.
func (v jsonValue) encode(buf *bytes.Buffer) error {
	switch v.kind {
	case '{':
		buf.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeScalar(buf, m.key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := m.value.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case '[':
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	}
	return encodeScalar(buf, v.scalar)
}

func encodeScalar(buf *bytes.Buffer, value any) error {
	var out bytes.Buffer
	enc := json.NewEncoder(&out)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(out.Bytes(), "\n"))
	return nil
}
