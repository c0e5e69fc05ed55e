// Package journal - пакет для записи данных запросов в журнал за текущий день
package journal

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

const permissions = 0644

// формат имени файла журнала и метки времени записи
const (
	fileDateLayout  = "02-01-2006"
	entryTimeLayout = "2006-01-02 15:04:05"
)

// Journal - журнал запросов; каждая запись открывает файл дня, дописывает строку и закрывает файл.
// Записи из разных соединений не упорядочиваются между собой
type Journal struct {
	dir string
	now func() time.Time
}

// New - журнал в каталоге dir
func New(dir string) *Journal {
	return &Journal{dir: dir, now: time.Now}
}

// NewWithClock - журнал с заданным источником времени
func NewWithClock(dir string, now func() time.Time) *Journal {
	return &Journal{dir: dir, now: now}
}

// FileName - путь до файла журнала за день t: log_dd-MM-yyyy.txt
func (j *Journal) FileName(t time.Time) string {
	return filepath.Join(j.dir, "log_"+t.Format(fileDateLayout)+".txt")
}

// Append - дописываем запись в файл журнала за текущий день
func (j *Journal) Append(data string) error {
	t := j.now()

	f, err := os.OpenFile(j.FileName(t), os.O_APPEND|os.O_CREATE|os.O_WRONLY, permissions)
	if err != nil {
		return err
	}

	// запись уходит в файл одним вызовом Write
	entry := t.Format(entryTimeLayout) + " - Data: " + data + "\n\n"
	if _, err = f.WriteString(entry); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// GetRecord - данные записи для GET запроса с параметрами
func GetRecord(clientAddr, method string, params []string) string {
	var b strings.Builder

	b.WriteString(header(clientAddr, method))
	b.WriteString("\nQueryParams: ")
	for _, p := range params {
		b.WriteString(p + " ")
	}

	return b.String()
}

// PostRecord - данные записи для POST запроса
func PostRecord(clientAddr, method, body string) string {
	return header(clientAddr, method) + "\nRequest:" + body
}

func header(clientAddr, method string) string {
	return "IP: " + clientAddr + "\nMethod:" + method
}
