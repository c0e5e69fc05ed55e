package headerdata

import (
	"bytes"
	"testing"

	"github.com/Kostushka/web_server/internal/connection/types"
)

func TestWriteResponseHeader(t *testing.T) {
	tests := []struct {
		name string
		data types.StatusData
		want string
	}{
		{
			name: "gzip ok",
			data: types.StatusData{Code: 200, Size: 31, ContentType: "text/css", Encoding: "gzip"},
			want: "HTTP/1.1 200 OK\r\nContent-Encoding: gzip\r\nContent-Type: text/css\r\nContent-Length: 31\r\n\r\n",
		},
		{
			name: "gzip not found",
			data: types.StatusData{Code: 404, Size: 40, ContentType: "text/html", Encoding: "gzip"},
			want: "HTTP/1.1 404 Not Found\r\nContent-Encoding: gzip\r\nContent-Type: text/html\r\nContent-Length: 40\r\n\r\n",
		},
		{
			name: "plain",
			data: types.StatusData{Code: 200, Size: 23, ContentType: "text/plain"},
			want: "HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nContent-Length: 23\r\n\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := HeaderData{}
			h.SetResponseData(&tt.data)

			var buf bytes.Buffer
			if err := h.WriteResponseHeader(&buf); err != nil {
				t.Fatalf("WriteResponseHeader() error = %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, buf.String())
			}
		})
	}
}

func TestSetResponseData(t *testing.T) {
	h := HeaderData{}
	h.SetResponseData(&types.StatusData{Code: 404, Size: 7, ContentType: "text/html", Encoding: "gzip"})

	rd := h.ResponseData()
	if rd.Status != "404" || rd.Phrase != "Not Found" || rd.Size != "7" {
		t.Errorf("unexpected response data: %+v", rd)
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, bytes.ErrTooLarge
}

func TestWriteResponseHeader_WriteError(t *testing.T) {
	h := HeaderData{}
	h.SetResponseData(&types.StatusData{Code: 200, ContentType: "text/plain"})

	if err := h.WriteResponseHeader(failWriter{}); err == nil {
		t.Error("expected write error")
	}
}
