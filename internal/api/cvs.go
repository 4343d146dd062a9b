package api

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"

	"github.com/jonathan/job-finder/internal/types"
)

// cvFieldName is the multipart field the server expects the document under.
const cvFieldName = "cv"

// cvContentType is sent for every upload regardless of the local file name.
const cvContentType = "application/pdf"

// GetUserCVs lists the authenticated user's uploaded CVs.
func (c *Client) GetUserCVs(ctx context.Context) ([]types.CV, error) {
	var cvs []types.CV
	if err := c.do(ctx, "get user cvs", http.MethodGet, "/api/cvs", nil, nil, &cvs); err != nil {
		return nil, err
	}
	return cvs, nil
}

// UploadCV sends a document as a multipart body. name is the display name
// stored with the record; the content is read from r in full before sending.
func (c *Client) UploadCV(ctx context.Context, name string, r io.Reader) (*types.CV, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+cvFieldName+`"; filename="`+escapeQuotes(name)+`"`)
	header.Set("Content-Type", cvContentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, &RequestFailure{Op: "upload cv", Cause: err}
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, &RequestFailure{Op: "upload cv", Cause: err}
	}
	if err := writer.Close(); err != nil {
		return nil, &RequestFailure{Op: "upload cv", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/cvs/upload", &buf)
	if err != nil {
		return nil, &RequestFailure{Op: "upload cv", Cause: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var cv types.CV
	if err := c.send(req, "upload cv", &cv); err != nil {
		return nil, err
	}
	return &cv, nil
}

// DeleteCV removes an uploaded document.
func (c *Client) DeleteCV(ctx context.Context, cvID string) error {
	return c.do(ctx, "delete cv", http.MethodDelete, "/api/cvs/"+url.PathEscape(cvID), nil, nil, nil)
}

// escapeQuotes mirrors the escaping multipart.Writer applies to file names.
func escapeQuotes(s string) string {
	var b bytes.Buffer
	for _, r := range s {
		if r == '\\' || r == '"' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
