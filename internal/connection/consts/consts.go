// Package consts - пакет с константами
package consts

const (
	// StatusOK - статус ответа: хорошо
	StatusOK = 200
	// StatusNotFound - статус ответа: не найдено
	StatusNotFound = 404
	// BufSize - размер буфера для единственного чтения запроса из сокета
	BufSize = 1024
	// Version - версия протокола в строке статуса
	Version = "HTTP/1.1"
	// EncodingGzip - значение заголовка Content-Encoding для сжатых ответов
	EncodingGzip = "gzip"
	// ContentTypeHTML - тип содержимого страницы ошибки
	ContentTypeHTML = "text/html"
	// ContentTypePlain - тип содержимого ответа на POST
	ContentTypePlain = "text/plain"
	// PostConfirmation - тело ответа на POST
	PostConfirmation = "POST data received.\n"
	// PostConfirmationLength - значение Content-Length ответа на POST;
	// зафиксировано числом, а не вычисляется по телу
	PostConfirmationLength = 23
	// ErrorPage - имя страницы ошибки в каталоге ошибок
	ErrorPage = "error404.html"
)
