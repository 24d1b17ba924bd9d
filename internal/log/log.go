// Package log - пакет с логерами сервера
package log

import (
	"io"
	"log"
	"os"
)

const permissions = 0644

// по умолчанию логеры пишут в stdout и stderr, чтобы пакеты могли логировать без вызова New
var (
	infoLog  = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime)
	errorLog = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime)
)

// New - создаем логеры: в stdout/stderr или в файл, если он указан
func New(logFile string) error {
	if logFile == "" {
		SetOutput(os.Stdout, os.Stderr)

		return nil
	}
	// создаем файл для записи лога
	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permissions)
	if err != nil {
		return err
	}

	SetOutput(f, f)

	return nil
}

// SetOutput - перенаправить информационный лог и лог ошибок
func SetOutput(info, errs io.Writer) {
	infoLog = log.New(info, "INFO: ", log.Ldate|log.Ltime)
	errorLog = log.New(errs, "ERROR: ", log.Ldate|log.Ltime)
}

// Infof - пишет информационный лог по формату
func Infof(format string, v ...any) {
	infoLog.Printf(format, v...)
}

// Info - пишет информационный лог без форматирования
func Info(v ...any) {
	infoLog.Println(v...)
}

// Errorf - пишет лог ошибки по формату
func Errorf(format string, v ...any) {
	errorLog.Printf(format, v...)
}

// Error - пишет лог ошибки без форматирования
func Error(v ...any) {
	errorLog.Println(v...)
}
