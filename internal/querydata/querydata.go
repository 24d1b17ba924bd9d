// Package querydata - пакет для чтения строки запроса и заголовков из клиентского сокета
package querydata

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/Kostushka/web_worker/internal/log"
)

var (
	// ErrNoHeaderEnd - клиент не прислал пустую строку, завершающую заголовки
	ErrNoHeaderEnd = errors.New("не получена пустая строка после заголовков")
	// ErrLineTooLong - строка запроса не уместилась в буфер
	ErrLineTooLong = errors.New("слишком длинная строка запроса")
)

// MaxLineSize - максимальная длина одной строки запроса вместе с \r\n
const MaxLineSize = 8192

// QueryData - данные запроса: метод, путь и протокол из первой строки
type QueryData struct {
	method   string
	path     string
	hasPath  bool
	protocol string
	lines    int
}

// Path - путь до ресурса без ведущего слеша; false, если строки GET не было
func (q *QueryData) Path() (string, bool) {
	return q.path, q.hasPath
}

func (q *QueryData) Method() string {
	return q.method
}

func (q *QueryData) Protocol() string {
	return q.protocol
}

// Lines - сколько строк запроса было прочитано
func (q *QueryData) Lines() int {
	return q.lines
}

// ReadConn - читаем запрос из соединения, ожидая не дольше timeout
func ReadConn(conn net.Conn, timeout time.Duration) (*QueryData, error) {
	if timeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
			return &QueryData{}, fmt.Errorf("не удалось установить таймаут чтения: %w", err)
		}
		// после чтения запроса таймаут больше не нужен
		defer conn.SetReadDeadline(time.Time{}) //nolint:errcheck
	}

	return Read(conn)
}

// Read - читаем строки запроса до пустой строки.
// При ошибке возвращаются данные, которые успели распарсить, и ошибка
func Read(r io.Reader) (*QueryData, error) {
	q := &QueryData{}
	// строки читаются в буфер фиксированного размера, память не растет от длинных строк
	br := bufio.NewReaderSize(r, MaxLineSize)

	for {
		raw, err := br.ReadSlice('\n')
		if errors.Is(err, bufio.ErrBufferFull) {
			return q, fmt.Errorf("%w: больше %d байт", ErrLineTooLong, MaxLineSize)
		}
		// строка без \n в конце потока тоже считается строкой
		if len(raw) > 0 {
			line := strings.TrimRight(string(raw), "\r\n")
			q.lines++

			log.Infof("строка запроса: (%s)", line)

			if q.lines == 1 {
				q.parseQueryString(line)
			}
			// пустая строка завершает заголовки
			if line == "" && err == nil {
				return q, nil
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				err = fmt.Errorf("клиент преждевременно закрыл соединение: %w: %w", ErrNoHeaderEnd, err)
			}

			return q, err
		}
	}
}

// парсим первую строку запроса: GET /path HTTP/1.1
func (q *QueryData) parseQueryString(line string) {
	// учитываем, что между частями строки может быть более одного пробела
	buf := strings.Fields(line)
	if len(buf) == 0 {
		return
	}

	q.method = buf[0]
	if len(buf) > 2 {
		q.protocol = buf[2]
	}

	if !strings.Contains(buf[0], "GET") || len(buf) < 2 {
		return
	}
	// убираем ровно один ведущий слеш
	q.path = strings.TrimPrefix(buf[1], "/")
	q.hasPath = true
}
