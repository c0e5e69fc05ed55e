// Package config - пакет для получения конфигурационных данных для запуска сервера
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var (
	// ErrNoRootDir - не указан путь до корневого каталога
	ErrNoRootDir = errors.New("не указан путь до *корневого* каталога")
	// ErrNoErrorDir - не указан путь до каталога со страницами ошибок
	ErrNoErrorDir = errors.New("не указан путь до каталога со страницами ошибок")
	// ErrInvalidPort - указан некорректный порт
	ErrInvalidPort = errors.New("указан некорректный порт")
	// ErrInvalidMaxConns - указано отрицательное ограничение на число соединений
	ErrInvalidMaxConns = errors.New("указано некорректное ограничение на число соединений")
)

// FileName - имя файла конфигурации в рабочем каталоге процесса
const FileName = "config.json"

const maxPort = 65535

// Data - данные для конфигурации сервера
type Data struct {
	port           int
	rootDirectory  string
	errorDirectory string
	maxConnections int
	serverLog      string
}

// документ конфигурации в том виде, в каком он лежит на диске
type document struct {
	Port           int
	RootDirectory  string
	ErrorDirectory string
	MaxConnections int
	ServerLog      string
}

// Port - возвращает порт, на котором сервер будет принимать запросы на соединение
func (c *Data) Port() int {
	return c.port
}

// RootDirectory - возвращает путь до каталога со статическими файлами
func (c *Data) RootDirectory() string {
	return c.rootDirectory
}

// ErrorDirectory - возвращает путь до каталога со страницей error404.html
func (c *Data) ErrorDirectory() string {
	return c.errorDirectory
}

// MaxConnections - возвращает максимальное число одновременно обрабатываемых соединений,
// 0 - без ограничения
func (c *Data) MaxConnections() int {
	return c.maxConnections
}

// ServerLog - возвращает имя файла для записи лога сервера или ""
func (c *Data) ServerLog() string {
	return c.serverLog
}

// New - функция-конструктор для получения структуры с конфигурационными данными
func New(port int, rootDirectory, errorDirectory string) (*Data, error) {
	return validate(document{
		Port:           port,
		RootDirectory:  rootDirectory,
		ErrorDirectory: errorDirectory,
	})
}

// Load - читаем файл конфигурации по пути
func Load(path string) (*Data, error) {
	content, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать файл конфигурации %q: %w", path, err)
	}

	c, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("файл конфигурации %q: %w", path, err)
	}

	return c, nil
}

// Parse - разбираем JSON документ конфигурации
func Parse(content []byte) (*Data, error) {
	var doc document

	dec := json.NewDecoder(bytes.NewReader(content))
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("некорректный формат конфигурации: %w", err)
	}

	return validate(doc)
}

// проверяем значения и собираем неизменяемую структуру
func validate(doc document) (*Data, error) {
	// порт должен быть корректным
	if doc.Port < 0 || doc.Port > maxPort {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPort, doc.Port)
	}
	// должен быть указан путь до корневого каталога
	if doc.RootDirectory == "" {
		return nil, ErrNoRootDir
	}
	// должен быть указан путь до каталога со страницами ошибок
	if doc.ErrorDirectory == "" {
		return nil, ErrNoErrorDir
	}

	if doc.MaxConnections < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxConns, doc.MaxConnections)
	}

	return &Data{
		port:           doc.Port,
		rootDirectory:  doc.RootDirectory,
		errorDirectory: doc.ErrorDirectory,
		maxConnections: doc.MaxConnections,
		serverLog:      doc.ServerLog,
	}, nil
}

// WithMaxConnections - копия конфигурации с другим ограничением на число соединений
func (c *Data) WithMaxConnections(n int) (*Data, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxConns, n)
	}
	cp := *c
	cp.maxConnections = n

	return &cp, nil
}
