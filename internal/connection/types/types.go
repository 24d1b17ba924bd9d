// Package types - пакет со структурами для строки статуса и заголовков ответа
package types

// ResponseStatusLine - строка статуса ответа
type ResponseStatusLine struct {
	Version string
	Status  string
}

// ResponseHeaders - заголовки ответа в порядке отправки
type ResponseHeaders []string

// StatusData - собираемые данные для строки статуса и заголовков ответа
type StatusData struct {
	Code        int
	ContentType string
	Date        string
	Server      string
}

// ResponseData - сформированные данные для строки статуса и заголовков ответа
type ResponseData struct {
	Status      string
	Date        string
	Server      string
	ContentType string
}
