// Package log - пакет с логерами сервера
package log

import (
	"io"
	"log"
	"os"
	"sync"
)

// до вызова New пишем в stdout и stderr
var infoLog = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime)
var errorLog = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime)

var (
	mu sync.Mutex
	// файл, открытый последним вызовом New, или nil
	logFile *os.File
)

const permissions = 0644

// New - создаем логеры; файл от предыдущего вызова закрывается
func New(path string) error {
	mu.Lock()
	defer mu.Unlock()

	// создаем логеры, пишущие в stdout
	if path == "" {
		infoLog = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime)
		errorLog = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime)
		return closeFile(nil)
	}
	// создаем файл для записи лога
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permissions)
	if err != nil {
		return err
	}
	// создаем логеры, пишущие в файл
	setOutput(f)
	return closeFile(f)
}

// SetOutput - перенаправить оба логера в w
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	setOutput(w)
}

func setOutput(w io.Writer) {
	infoLog = log.New(w, "INFO: ", log.Ldate|log.Ltime)
	errorLog = log.New(w, "ERROR: ", log.Ldate|log.Ltime)
}

// закрываем предыдущий файл лога и запоминаем новый
func closeFile(next *os.File) error {
	prev := logFile
	logFile = next
	if prev == nil {
		return nil
	}

	return prev.Close()
}

// Infof - пишет информационный лог
func Infof(format string, v ...any) {
	infoLog.Printf(format, v...)
}

// Errorf - пишет лог ошибки
func Errorf(format string, v ...any) {
	errorLog.Printf(format, v...)
}

// Error - пишет ошибку без дополнительного текста
func Error(err error) {
	errorLog.Println(err)
}
