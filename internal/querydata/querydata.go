// Package querydata - пакет для чтения и разбора данных запроса
package querydata

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Kostushka/web_server/internal/connection/consts"
)

var (
	// ErrInvalidHTTPReq - строку запроса не удалось разделить на метод и путь
	ErrInvalidHTTPReq = errors.New("incorrect request format: not HTTP")
	// ErrEmptyRequest - клиент закрыл соединение, ничего не прислав
	ErrEmptyRequest = errors.New("empty request")
)

// Method - метод запроса
type Method int

const (
	// MethodOther - любой метод, кроме GET и POST
	MethodOther Method = iota
	// MethodGet - GET
	MethodGet
	// MethodPost - POST
	MethodPost
)

func (m Method) String() string {
	switch m {
	case MethodGet:
		return "GET"
	case MethodPost:
		return "POST"
	default:
		return "OTHER"
	}
}

// ParseMethod - метод по токену из строки запроса
func ParseMethod(token string) Method {
	switch token {
	case "GET":
		return MethodGet
	case "POST":
		return MethodPost
	default:
		return MethodOther
	}
}

// Reader - способ получить сырые байты запроса из соединения
type Reader func(r io.Reader) ([]byte, error)

// ReadOnce - одно чтение из сокета в буфер фиксированного размера;
// все, что не поместилось в буфер, отбрасывается
func ReadOnce(r io.Reader) ([]byte, error) {
	buf := make([]byte, consts.BufSize)

	n, err := r.Read(buf)
	if n == 0 {
		if err == nil || errors.Is(err, io.EOF) {
			return nil, ErrEmptyRequest
		}

		return nil, err
	}

	return buf[:n], nil
}

// QueryData - разобранные данные запроса
type QueryData struct {
	method     Method
	rawMethod  string
	path       string
	protocol   string
	params     []string
	hasParams  bool
	body       string
	hasBody    bool
	clientAddr string
}

// Method - метод запроса
func (q *QueryData) Method() Method {
	return q.method
}

// RawMethod - метод в том виде, в каком его прислал клиент
func (q *QueryData) RawMethod() string {
	return q.rawMethod
}

// Path - путь из строки запроса без query string
func (q *QueryData) Path() string {
	return q.path
}

// Protocol - версия протокола из строки запроса или ""
func (q *QueryData) Protocol() string {
	return q.protocol
}

// Params - параметры query string в порядке следования, без разбора на ключ и значение
func (q *QueryData) Params() []string {
	return q.params
}

// HasParams - в пути запроса был знак '?'
func (q *QueryData) HasParams() bool {
	return q.hasParams
}

// Body - первая строка после пустой строки, отделяющей заголовки
func (q *QueryData) Body() string {
	return q.body
}

// HasBody - после заголовков нашлась строка тела
func (q *QueryData) HasBody() bool {
	return q.hasBody
}

// ClientAddr - адрес клиента
func (q *QueryData) ClientAddr() string {
	return q.clientAddr
}

// NewParseQueryData - создаем структуру с разобранными данными запроса
func NewParseQueryData(data []byte, clientAddr string) (*QueryData, error) {
	if len(data) == 0 {
		return nil, ErrEmptyRequest
	}

	q := QueryData{clientAddr: clientAddr}

	// запрос делим на строки по \r\n
	lines := strings.Split(string(data), "\r\n")

	// парсим строку запроса в структуру
	if err := q.parseQueryString(lines[0]); err != nil {
		return nil, err
	}
	// тело - первая строка после пустой
	q.parseBody(lines)

	return &q, nil
}

// парсим строку запроса: METHOD TARGET VERSION
func (q *QueryData) parseQueryString(line string) error {
	buf := strings.Split(trimQueryStringSpace(line), " ")
	// в буфере должно быть хотя бы 2 элемента: метод и путь
	if len(buf) < 2 || buf[0] == "" || buf[1] == "" {
		return fmt.Errorf("не удалось распарсить строку запроса %q: %w", line, ErrInvalidHTTPReq)
	}

	q.rawMethod = buf[0]
	q.method = ParseMethod(buf[0])
	if len(buf) > 2 {
		q.protocol = buf[2]
	}

	// отделяем путь от query string
	path, query, found := strings.Cut(buf[1], "?")
	if path == "" {
		return fmt.Errorf("пустой путь в строке запроса %q: %w", line, ErrInvalidHTTPReq)
	}
	q.path = path

	if found {
		q.hasParams = true
		q.params = strings.Split(query, "&")
	}

	return nil
}

// ищем первую пустую строку, тело - строка сразу за ней
func (q *QueryData) parseBody(lines []string) {
	for i, l := range lines {
		if l != "" {
			continue
		}
		if i+1 < len(lines) {
			q.body = lines[i+1]
			q.hasBody = true
		}

		return
	}
}

// учитываем, что строка запроса может содержать более одного пробела, например:
// GET        /                HTTP/1.1
// удаляем лишние пробелы
func trimQueryStringSpace(str string) string {
	var prev byte

	var res strings.Builder
	for i := 0; i < len(str); i++ {
		if str[i] == prev && prev == ' ' {
			continue
		}
		prev = str[i]
		res.WriteByte(str[i])
	}

	return res.String()
}
