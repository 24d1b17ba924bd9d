// Package connection - пакет с функциями, которые работают с клиентским соединением
package connection

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net"
	"time"

	"github.com/go-git/go-billy/v5"

	"github.com/Kostushka/web_worker/internal/config"
	"github.com/Kostushka/web_worker/internal/connection/consts"
	"github.com/Kostushka/web_worker/internal/connection/headerdata"
	"github.com/Kostushka/web_worker/internal/connection/types"
	"github.com/Kostushka/web_worker/internal/file"
	"github.com/Kostushka/web_worker/internal/log"
	"github.com/Kostushka/web_worker/internal/page"
	"github.com/Kostushka/web_worker/internal/querydata"
	"github.com/Kostushka/web_worker/internal/resource"
)

// Connection - структура с данными обрабатываемого соединения
type Connection struct {
	conn     net.Conn
	config   *config.Data
	resolver *resource.Resolver
	now      func() time.Time
}

// New - создать структуру с данными обрабатываемого соединения
func New(conn net.Conn, root billy.Filesystem, cfg *config.Data) *Connection {
	return &Connection{
		conn:     conn,
		config:   cfg,
		resolver: resource.New(root),
		now:      time.Now,
	}
}

// ProcessingConn - обрабатываем клиентское соединение: один запрос, один ответ, закрытие
func (c *Connection) ProcessingConn() {
	addr := c.conn.RemoteAddr().String()

	// закрыть клиентское соединение
	defer Close(c.conn, fmt.Sprintf("клиентское соединение %s закрыто", addr))

	// паника при обработке одного соединения не должна останавливать сервер
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("обработка соединения %s прервана: %v", addr, r)
		}
	}()

	log.Infof("начинается работа с клиентским сокетом %s", addr)

	// получить данные запроса; при ошибке работаем с тем, что успели прочитать
	query, err := querydata.ReadConn(c.conn, c.config.ReadTimeout())
	if err != nil {
		log.Errorf("запрос от %s прочитан не полностью: %v", addr, err)
	}

	path, ok := query.Path()

	log.Infof("\"%v %v %v\" %v, строк в запросе: %d", query.Method(), path, query.Protocol(), addr, query.Lines())

	res := c.resolver.Resolve(path, ok)

	if err = c.WriteResponse(c.conn, res); err != nil {
		log.Errorf("ответ клиенту %s не отправлен: %v", addr, err)
	}
}

// WriteResponse - отправить клиенту заголовки и тело ответа
func (c *Connection) WriteResponse(w io.Writer, res resource.Resource) error {
	bw := bufio.NewWriter(w)
	date := headerdata.FormatDate(c.now())

	// тело готовим до отправки заголовков, чтобы знать статус ответа
	body := c.openBody(res, date)
	defer closeBody(body)

	if body == nil {
		res = resource.NotFound
	}

	if err := c.sendResponseHeader(bw, res, date); err != nil {
		return err
	}

	if body == nil {
		if _, err := io.WriteString(bw, consts.NotFoundBody); err != nil {
			return fmt.Errorf("тело ответа не отправлено: %w", err)
		}

		return bw.Flush()
	}

	if err := file.Send(bw, body); err != nil {
		return fmt.Errorf("файл %q не был отправлен клиенту: %w", res.Path(), err)
	}

	return bw.Flush()
}

// получаем тело ответа; nil - файл не открыть, отвечаем 404
func (c *Connection) openBody(res resource.Resource, date string) io.Reader {
	if !res.IsFound() {
		return nil
	}

	root := c.resolver.Filesystem()

	// картинки и прочие файлы копируются как есть
	if res.Binary() {
		f, err := file.Open(root, res.Path())
		if err != nil {
			logOpenError(err)

			return nil
		}

		return f
	}

	// html читается целиком, в нем заменяются метки
	data, err := file.ReadAll(root, res.Path())
	if err != nil {
		logOpenError(err)

		return nil
	}

	return bytes.NewReader(page.Render(data, date, c.config.ServerName()))
}

// файл могли удалить или закрыть к нему доступ после проверки существования
func logOpenError(err error) {
	if errors.Is(err, fs.ErrNotExist) {
		log.Infof("файл пропал после проверки: %v", err)

		return
	}

	log.Errorf("файл не удалось открыть, отвечаем 404: %v", err)
}

// отправляем клиенту заголовки ответа
func (c *Connection) sendResponseHeader(w io.Writer, res resource.Resource, date string) error {
	statusData := &types.StatusData{
		Code:        consts.StatusOK,
		ContentType: res.ContentType(),
		Date:        date,
		Server:      c.config.ServerName(),
	}

	// тело 404 - текст, тип как у html
	if !res.IsFound() {
		statusData.Code = consts.StatusNotFound
		statusData.ContentType = resource.HTMLContentType
	}

	data := headerdata.HeaderData{}
	data.SetResponseData(statusData)

	return data.WriteResponseHeader(w)
}

func closeBody(body io.Reader) {
	if c, ok := body.(io.Closer); ok {
		file.Close(c)
	}
}

// Close - закрытие соединения
func Close(c io.Closer, m string) {
	err := c.Close()
	if err != nil {
		log.Error(err)

		return
	}

	if m != "" {
		log.Info(m)
	}
}
