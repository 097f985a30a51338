package backend

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/textproto"
	"sort"
	"strconv"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/errors"
)

const imageField = "image"

// payload is a request body together with its Content-Type.
type payload interface {
	encode() ([]byte, string, error)
}

type jsonPayload struct {
	value any
}

func jsonBody(value any) payload {
	return jsonPayload{value: value}
}

func (p jsonPayload) encode() ([]byte, string, error) {
	data, err := json.Marshal(p.value)
	if err != nil {
		return nil, "", errors.WithStack(err)
	}

	return data, "application/json", nil
}

// multipartPayload carries text fields and an optional image file.
type multipartPayload struct {
	fields map[string]string
	image  *entity.ImageUpload
}

func multipartBody(fields map[string]string, image *entity.ImageUpload) payload {
	return multipartPayload{fields: fields, image: image}
}

func (p multipartPayload) encode() ([]byte, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	names := make([]string, 0, len(p.fields))
	for name := range p.fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := writer.WriteField(name, p.fields[name]); err != nil {
			return nil, "", errors.WithStack(err)
		}
	}

	if p.image != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="`+imageField+`"; filename="`+escapeQuotes(p.image.Filename)+`"`)
		header.Set("Content-Type", p.image.ContentType)

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", errors.WithStack(err)
		}
		if _, err := part.Write(p.image.Data); err != nil {
			return nil, "", errors.WithStack(err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", errors.WithStack(err)
	}

	return buf.Bytes(), writer.FormDataContentType(), nil
}

func escapeQuotes(s string) string {
	var b bytes.Buffer
	for _, r := range s {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}

	return b.String()
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
