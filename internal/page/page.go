// Package page - подстановка имени сервера и даты в html файлы
package page

import "strings"

const (
	// DateToken - заменяется на текущую дату
	DateToken = "<cs371date>"
	// ServerToken - заменяется на имя сервера
	ServerToken = "<cs371server>"
)

// Render - заменить все вхождения меток в документе целиком
func Render(content []byte, date, server string) []byte {
	s := strings.ReplaceAll(string(content), DateToken, date)
	s = strings.ReplaceAll(s, ServerToken, server)

	return []byte(s)
}
