package panel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
)

// State is the composer state of a Panel.
type State int

const (
	// StateIdle shows the record list; no form is open.
	StateIdle State = iota
	// StateComposing has an add or edit form open.
	StateComposing
	// StateSubmitting has a request in flight.
	StateSubmitting
)

// Field describes one form field of a resource.
type Field struct {
	Name     string
	Required bool
}

// Resource describes one managed collection of the admin API.
type Resource struct {
	// Path is the collection endpoint, e.g. "/api/blog".
	Path string
	// Fields are the text fields of the add/edit form.
	Fields []Field
	// Multipart marks collections whose mutations are multipart form
	// data; the rest send JSON.
	Multipart bool
	// NeedsFile requires an attached file when adding a record.
	NeedsFile bool
}

// File is an attachment staged on the form.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

// Panel drives one managed collection the way the admin screens do: it
// holds the fetched record list, an optional open form, and refetches the
// whole list after every successful mutation so the view never goes stale.
type Panel[T any] struct {
	client   *Client
	resource Resource

	state   State
	records []T

	editID string // empty while adding
	form   map[string]string
	file   *File
}

// New creates a Panel for the given resource.
func New[T any](client *Client, resource Resource) *Panel[T] {
	return &Panel[T]{
		client:   client,
		resource: resource,
		state:    StateIdle,
	}
}

// State returns the current composer state.
func (p *Panel[T]) State() State {
	return p.state
}

// Records returns the record list from the last refresh.
func (p *Panel[T]) Records() []T {
	return p.records
}

// Refresh fetches the full record list.
func (p *Panel[T]) Refresh(ctx context.Context) error {
	var records []T
	if err := p.client.doJSON(ctx, http.MethodGet, p.resource.Path, nil, "", &records); err != nil {
		return err
	}
	p.records = records
	return nil
}

// OpenAdd opens an empty add form.
func (p *Panel[T]) OpenAdd() {
	p.state = StateComposing
	p.editID = ""
	p.form = make(map[string]string)
	p.file = nil
}

// OpenEdit opens an edit form for the given record id, pre-populated from
// the fetched list. Fields absent from the form when submitting keep their
// stored values server-side.
func (p *Panel[T]) OpenEdit(id string) {
	p.state = StateComposing
	p.editID = id
	p.form = make(map[string]string)
	p.file = nil

	for _, record := range p.records {
		data, err := json.Marshal(record)
		if err != nil {
			continue
		}
		var fields map[string]interface{}
		if err := json.Unmarshal(data, &fields); err != nil {
			continue
		}
		if recordID, _ := fields["id"].(string); recordID != id {
			continue
		}
		for _, f := range p.resource.Fields {
			if value, ok := fields[f.Name].(string); ok {
				p.form[f.Name] = value
			}
		}
		return
	}
}

// Field returns the staged value of a form field.
func (p *Panel[T]) Field(name string) string {
	return p.form[name]
}

// SetField stages a form field value. Unknown fields are ignored so a
// caller cannot smuggle extra columns into the request.
func (p *Panel[T]) SetField(name, value string) {
	if p.form == nil {
		return
	}
	for _, f := range p.resource.Fields {
		if f.Name == name {
			p.form[name] = value
			return
		}
	}
}

// AttachFile stages a file on the form.
func (p *Panel[T]) AttachFile(file *File) {
	if p.form == nil {
		return
	}
	p.file = file
}

// Close discards the open form without submitting.
func (p *Panel[T]) Close() {
	p.state = StateIdle
	p.editID = ""
	p.form = nil
	p.file = nil
}

// Submit validates the form and sends the mutation. Validation failures
// and rejected requests leave the form open with its values intact; on
// success the list is refetched and the form closes.
func (p *Panel[T]) Submit(ctx context.Context) error {
	if p.state != StateComposing {
		return fmt.Errorf("no form open")
	}

	for _, f := range p.resource.Fields {
		if f.Required && p.form[f.Name] == "" {
			return fmt.Errorf("%s is required", f.Name)
		}
	}
	// Only the file gate is add-only: edits keep the stored image when no
	// replacement is staged.
	if p.editID == "" && p.resource.NeedsFile && p.file == nil {
		return fmt.Errorf("an image file is required")
	}

	method := http.MethodPost
	path := p.resource.Path
	if p.editID != "" {
		method = http.MethodPut
		path = p.resource.Path + "/" + p.editID
	}

	body, contentType, err := p.encodeForm()
	if err != nil {
		return err
	}

	p.state = StateSubmitting
	if err := p.client.doJSON(ctx, method, path, body, contentType, nil); err != nil {
		p.state = StateComposing
		return err
	}

	p.Close()
	return p.Refresh(ctx)
}

// Delete asks for confirmation, deletes the record and refetches the list.
// A declined confirmation is not an error and sends nothing.
func (p *Panel[T]) Delete(ctx context.Context, id string, confirm func() bool) error {
	if confirm != nil && !confirm() {
		return nil
	}

	if err := p.client.doJSON(ctx, http.MethodDelete, p.resource.Path+"/"+id, nil, "", nil); err != nil {
		return err
	}
	return p.Refresh(ctx)
}

// encodeForm renders the staged fields as a multipart or JSON body.
func (p *Panel[T]) encodeForm() (*bytes.Buffer, string, error) {
	if p.resource.Multipart {
		buf := &bytes.Buffer{}
		w := multipart.NewWriter(buf)
		for name, value := range p.form {
			if err := w.WriteField(name, value); err != nil {
				return nil, "", err
			}
		}
		if p.file != nil {
			// CreateFormFile would hardcode application/octet-stream;
			// the server picks the extension from this header.
			header := make(textproto.MIMEHeader)
			header.Set("Content-Disposition",
				fmt.Sprintf(`form-data; name="image"; filename=%q`, p.file.Name))
			header.Set("Content-Type", p.file.ContentType)
			part, err := w.CreatePart(header)
			if err != nil {
				return nil, "", err
			}
			if _, err := part.Write(p.file.Content); err != nil {
				return nil, "", err
			}
		}
		if err := w.Close(); err != nil {
			return nil, "", err
		}
		return buf, w.FormDataContentType(), nil
	}

	payload := make(map[string]string, len(p.form))
	for name, value := range p.form {
		payload[name] = value
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, "", err
	}
	return bytes.NewBuffer(data), "application/json", nil
}
