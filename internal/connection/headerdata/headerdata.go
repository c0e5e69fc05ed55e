// Package headerdata - пакет для формирования строки статуса и заголовков ответа
package headerdata

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/Kostushka/web_server/internal/connection/consts"
	"github.com/Kostushka/web_server/internal/connection/types"
	"github.com/Kostushka/web_server/internal/log"
)

const crlf = "\r\n"

// HeaderData - структура с сформированными данными для строки статуса и заголовков ответа
type HeaderData struct {
	responseData *types.ResponseData
}

// ResponseData - возвращает сформированные данные ответа
func (h *HeaderData) ResponseData() *types.ResponseData {
	return h.responseData
}

// SetResponseData - формируем данные заголовков для ответа клиенту
func (h *HeaderData) SetResponseData(data *types.StatusData) {
	// заполняем структуру данных для формирования ответа клиенту
	h.responseData = &types.ResponseData{
		Status:      strconv.Itoa(data.Code),
		Phrase:      http.StatusText(data.Code),
		Size:        strconv.Itoa(data.Size),
		ContentType: data.ContentType,
		Encoding:    data.Encoding,
	}
}

// WriteResponseHeader - формируем и отправляем клиенту строку статуса и заголовки ответа;
// заголовков ровно три: Content-Encoding (если тело сжато), Content-Type и Content-Length
func (h *HeaderData) WriteResponseHeader(w io.Writer) error {
	respStatus := types.ResponseStatusLine{
		Version: consts.Version,
		Status:  h.responseData.Status,
		Phrase:  h.responseData.Phrase,
	}

	respHeaders := make([]string, 0, 3)

	if h.responseData.Encoding != "" {
		respHeaders = append(respHeaders, "Content-Encoding: "+h.responseData.Encoding)
	}
	respHeaders = append(respHeaders,
		"Content-Type: "+h.responseData.ContentType,
		"Content-Length: "+h.responseData.Size,
	)

	// пишем ответ в клиентский сокет
	return writeToConn(w, respStatus, respHeaders)
}

// Format - строка статуса и заголовки в том виде, в каком они уходят клиенту
func Format(respStatus types.ResponseStatusLine, respHeaders []string) string {
	var b strings.Builder

	// строка статуса
	b.WriteString(respStatus.Version + " " + respStatus.Status + " " + respStatus.Phrase + crlf)
	for _, v := range respHeaders {
		b.WriteString(v + crlf)
	}
	// заголовки отделяются от тела пустой строкой
	b.WriteString(crlf)

	return b.String()
}

// пишем заголовки в клиентский сокет одним вызовом Write
func writeToConn(w io.Writer, respStatus types.ResponseStatusLine, respHeaders []string) error {
	head := Format(respStatus, respHeaders)

	if _, err := io.WriteString(w, head); err != nil {
		return err
	}

	log.Infof("клиенту отправлены заголовки ответа: %s %s %q",
		respStatus.Status, respStatus.Phrase, respHeaders)

	return nil
}
