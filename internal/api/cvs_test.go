package api

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadCV_MultipartFieldAndContentType(t *testing.T) {
	var (
		fieldName string
		fileName  string
		partType  string
		content   []byte
		gotAuth   string
		reqType   string
	)
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/cvs/upload", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		reqType = r.Header.Get("Content-Type")

		require.NoError(t, r.ParseMultipartForm(1<<20))
		for name, headers := range r.MultipartForm.File {
			fieldName = name
			require.Len(t, headers, 1)
			fileName = headers[0].Filename
			partType = headers[0].Header.Get("Content-Type")
			f, err := headers[0].Open()
			require.NoError(t, err)
			content, err = io.ReadAll(f)
			require.NoError(t, err)
			_ = f.Close()
		}
		_, _ = w.Write([]byte(`{"_id":"cv1","name":"resume.pdf"}`))
	})
	client, _ := newTestClient(t, handler, &staticToken{token: "tok"})

	cv, err := client.UploadCV(context.Background(), "resume.pdf", strings.NewReader("%PDF-1.4 fake"))
	require.NoError(t, err)

	assert.Equal(t, "cv", fieldName, "server expects the document under the 'cv' field")
	assert.Equal(t, "resume.pdf", fileName)
	assert.Equal(t, "application/pdf", partType, "content type is fixed regardless of the local file")
	assert.Equal(t, "%PDF-1.4 fake", string(content))
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Contains(t, reqType, "multipart/form-data")
	assert.Equal(t, "cv1", cv.ID)
}

func TestUploadCV_NameIndependentOfLocalPathFormat(t *testing.T) {
	var fileName string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		fileName = r.MultipartForm.File["cv"][0].Filename
		_, _ = w.Write([]byte(`{"_id":"cv2","name":"My Resume"}`))
	})
	client, _ := newTestClient(t, handler, nil)

	// Display name is whatever the caller chose, not a path.
	_, err := client.UploadCV(context.Background(), "My Resume", strings.NewReader("data"))
	require.NoError(t, err)
	assert.Equal(t, "My Resume", fileName)
}

func TestGetUserCVs_EmptyListIsNotAnError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/cvs", r.URL.Path)
		_, _ = w.Write([]byte(`[]`))
	})
	client, _ := newTestClient(t, handler, nil)

	cvs, err := client.GetUserCVs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cvs)
}

func TestDeleteCV_Path(t *testing.T) {
	var method, path string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		w.WriteHeader(http.StatusOK)
	})
	client, _ := newTestClient(t, handler, nil)

	require.NoError(t, client.DeleteCV(context.Background(), "cv1"))
	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/api/cvs/cv1", path)
}
