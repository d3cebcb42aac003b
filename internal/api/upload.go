package api

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// Photos larger than this are rejected before touching object storage.
const maxUploadBytes = 10 << 20

// readUploadedFile pulls a multipart file field out of the request and
// returns its content type and bytes.
func readUploadedFile(c *gin.Context, field string) (contentType string, data []byte, err error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", nil, err
	}
	if fileHeader.Size > maxUploadBytes {
		return "", nil, errors.New("file too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", nil, err
	}
	defer file.Close()

	data, err = io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		return "", nil, err
	}

	contentType = fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return contentType, data, nil
}
