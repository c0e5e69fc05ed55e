// Package connection - пакет с функциями, которые работают с клиентским соединением
package connection

import (
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/Kostushka/web_server/internal/compression"
	"github.com/Kostushka/web_server/internal/config"
	"github.com/Kostushka/web_server/internal/connection/consts"
	"github.com/Kostushka/web_server/internal/connection/headerdata"
	"github.com/Kostushka/web_server/internal/connection/types"
	"github.com/Kostushka/web_server/internal/file"
	"github.com/Kostushka/web_server/internal/journal"
	"github.com/Kostushka/web_server/internal/log"
	"github.com/Kostushka/web_server/internal/querydata"
)

// Connection - структура с данными обрабатываемого соединения
type Connection struct {
	conn     net.Conn
	config   *config.Data
	resolver *file.Resolver
	journal  *journal.Journal
	read     querydata.Reader
}

// New - создать структуру с данными обрабатываемого соединения
func New(conn net.Conn, cfg *config.Data, j *journal.Journal) *Connection {
	return &Connection{
		conn:     conn,
		config:   cfg,
		resolver: file.NewResolver(cfg.RootDirectory()),
		journal:  j,
		read:     querydata.ReadOnce,
	}
}

// SetReader - заменить способ чтения запроса из сокета
func (c *Connection) SetReader(r querydata.Reader) {
	c.read = r
}

// ProcessingConn - обрабатываем клиентское соединение
func (c *Connection) ProcessingConn() {
	addr := c.conn.RemoteAddr().String()

	// закрыть клиентское соединение
	defer Close(c.conn, fmt.Sprintf("клиентское соединение %s закрыто", addr))

	// паника в одном соединении не должна ронять сервер
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("паника при обработке соединения %s: %v", addr, r)
		}
	}()

	log.Infof("начинается работа с клиентским сокетом %s", addr)

	// получить данные запроса
	data, err := c.read(c.conn)
	if err != nil {
		// клиент закрыл сокет, ничего не прислав
		if errors.Is(err, querydata.ErrEmptyRequest) {
			log.Infof("клиент %s не прислал данных", addr)
			return
		}
		log.Errorf("не удалось прочитать запрос клиента %s: %v", addr, err)

		return
	}

	// создать структуру с данными запроса
	query, err := querydata.NewParseQueryData(data, addr)
	if err != nil {
		// некорректный запрос: ничего не отвечаем, просто закрываем соединение
		log.Infof("запрос клиента %s не обработан: %v", addr, err)
		return
	}

	log.Infof("\"%v %v %v\" %v", query.RawMethod(), query.Path(), query.Protocol(), addr)

	switch query.Method() {
	case querydata.MethodGet:
		err = c.processingGet(query)
	case querydata.MethodPost:
		err = c.processingPost(query)
	default:
		log.Infof("метод %q не поддерживается, ответ не отправляется", query.RawMethod())
		return
	}

	if err != nil {
		log.Error(err)
	}
}

// GET: отдаем файл или страницу 404
func (c *Connection) processingGet(query *querydata.QueryData) error {
	path, found := c.resolver.Resolve(query.Path())
	if !found {
		log.Infof("файл %q не найден", path)

		// 404 в журнал не пишем, даже если были параметры
		return c.SendNotFound()
	}

	log.Infof("определен путь до файла: %q", path)

	if err := c.SendFile(path); err != nil {
		return err
	}

	// в журнал пишем только GET с параметрами
	if !query.HasParams() {
		return nil
	}

	err := c.journal.Append(journal.GetRecord(query.ClientAddr(), query.Method().String(), query.Params()))
	if err != nil {
		return fmt.Errorf("не удалось записать GET запрос в журнал: %w", err)
	}

	return nil
}

// POST: пишем тело в журнал и отвечаем подтверждением
func (c *Connection) processingPost(query *querydata.QueryData) error {
	err := c.journal.Append(journal.PostRecord(query.ClientAddr(), query.Method().String(), query.Body()))
	if err != nil {
		// подтверждение отправляем в любом случае
		log.Errorf("не удалось записать POST запрос в журнал: %v", err)
	}

	return c.SendPostConfirmation()
}

// SendFile - отправить клиенту сжатый файл со статусом 200
func (c *Connection) SendFile(path string) error {
	return c.sendCompressed(path, consts.StatusOK, file.ContentType(path))
}

// SendNotFound - отправить клиенту сжатую страницу error404.html из каталога ошибок
func (c *Connection) SendNotFound() error {
	path := c.config.ErrorDirectory() + "/" + consts.ErrorPage

	return c.sendCompressed(path, consts.StatusNotFound, consts.ContentTypeHTML)
}

// SendPostConfirmation - отправить клиенту фиксированный ответ на POST
func (c *Connection) SendPostConfirmation() error {
	err := c.sendResponseHeader(&types.StatusData{
		Code:        consts.StatusOK,
		Size:        consts.PostConfirmationLength,
		ContentType: consts.ContentTypePlain,
	})
	if err != nil {
		return err
	}

	if _, err = io.WriteString(c.conn, consts.PostConfirmation); err != nil {
		return fmt.Errorf("подтверждение POST не было отправлено клиенту: %w", err)
	}

	log.Infof("клиенту отправлено подтверждение POST")

	return nil
}

// читаем файл целиком, сжимаем и отправляем заголовки и тело
func (c *Connection) sendCompressed(path string, code int, contentType string) error {
	content, err := file.Read(path)
	if err != nil {
		return fmt.Errorf("файл %q не готов к отправке: %w", path, err)
	}

	compressed, err := compression.Gzip(content)
	if err != nil {
		return fmt.Errorf("не удалось сжать файл %q: %w", path, err)
	}

	// отправляем клиенту заголовки
	err = c.sendResponseHeader(&types.StatusData{
		Code:        code,
		Size:        len(compressed),
		ContentType: contentType,
		Encoding:    consts.EncodingGzip,
	})
	if err != nil {
		return err
	}

	// отправить тело клиенту
	if _, err = c.conn.Write(compressed); err != nil {
		return fmt.Errorf("файл %q не был отправлен клиенту: %w", path, err)
	}

	log.Infof("клиенту отправлено тело ответа: %d байт", len(compressed))

	return nil
}

// отправляем клиенту заголовки ответа
func (c *Connection) sendResponseHeader(statusData *types.StatusData) error {
	// формируем данные для ответа
	data := headerdata.HeaderData{}
	data.SetResponseData(statusData)

	// отправляем заголовки клиенту
	if err := data.WriteResponseHeader(c.conn); err != nil {
		return fmt.Errorf("не удалось отправить заголовки: %w", err)
	}

	return nil
}

// Close - закрытие файла или соединения
func Close(c io.Closer, m string) {
	err := c.Close()
	if err != nil {
		log.Error(err)

		return
	}

	if m != "" {
		log.Infof("%s", m)
	}
}
