package apiimpl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path"

	"github.com/google/uuid"
	apperrors "github.com/orgball2608/socialgram-client/pkg/errors"
)

// Upload pushes a media file and returns the reference the server hands
// back, later attached to a post or story creation payload. The stored
// filename is randomized; only the extension is kept.
func (a *APIImpl) Upload(ctx context.Context, kind string, filename string, contentType string, r io.Reader) (string, error) {
	uploadPath := "/files/upload/" + url.PathEscape(kind)
	if err := a.limiter.Wait(ctx, http.MethodPost+" "+uploadPath); err != nil {
		return "", setupError(err)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`,
		uuid.NewString()+path.Ext(filename)))
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}

	part, err := writer.CreatePart(header)
	if err != nil {
		return "", setupError(err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", setupError(err)
	}
	if err := writer.Close(); err != nil {
		return "", setupError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+uploadPath, &buf)
	if err != nil {
		return "", setupError(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	var ref json.RawMessage
	if err := a.send(req, &ref); err != nil {
		return "", err
	}

	// The server answers with either a bare JSON string or {"url": "..."}.
	var asString string
	if err := json.Unmarshal(ref, &asString); err == nil {
		return asString, nil
	}
	var asObject struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(ref, &asObject); err == nil && asObject.URL != "" {
		return asObject.URL, nil
	}
	return "", &apperrors.APIError{
		Kind:    apperrors.KindServer,
		Message: fmt.Sprintf("Unexpected upload response: %s", ref),
	}
}
