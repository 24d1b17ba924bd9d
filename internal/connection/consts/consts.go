// Package consts - пакет с константами
package consts

const (
	// StatusOK - статус ответа: хорошо
	StatusOK = 200
	// StatusNotFound - статус ответа: не найдено
	StatusNotFound = 404
	// Version - версия протокола в строке статуса
	Version = "HTTP/1.1"
	// NotFoundBody - тело ответа, если файла нет
	NotFoundBody = "404 Not Found"
	// DateLayout - формат даты в заголовке Date и в html файлах, время всегда по GMT
	DateLayout = "Jan 2, 2006, 3:04:05 PM"
	// BufSize - дефолтный размер буфера
	BufSize = 4096
)
