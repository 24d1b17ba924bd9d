// Package headerdata - пакет для формирования и отправки заголовков ответа
package headerdata

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Kostushka/web_worker/internal/connection/consts"
	"github.com/Kostushka/web_worker/internal/connection/types"
	"github.com/Kostushka/web_worker/internal/log"
)

// HeaderData - структура с сформированными данными для строки статуса и заголовков ответа
type HeaderData struct {
	responseData *types.ResponseData
}

// FormatDate - дата для заголовка Date по GMT
func FormatDate(t time.Time) string {
	return t.In(time.FixedZone("GMT", 0)).Format(consts.DateLayout)
}

// SetResponseData - формируем данные заголовков для ответа клиенту
func (h *HeaderData) SetResponseData(data *types.StatusData) {
	h.responseData = &types.ResponseData{
		Status:      strconv.Itoa(data.Code),
		Date:        data.Date,
		Server:      data.Server,
		ContentType: data.ContentType,
	}
}

// Lines - строка статуса и заголовки в порядке отправки
func (h *HeaderData) Lines() (types.ResponseStatusLine, types.ResponseHeaders) {
	respStatus := types.ResponseStatusLine{
		Version: consts.Version,
		Status:  h.responseData.Status,
	}

	respHeaders := types.ResponseHeaders{
		"Date: " + h.responseData.Date,
		"Server: " + h.responseData.Server,
		// соединение всегда закрывается после ответа, Content-Length не нужен
		"Connection: close",
		"Content-Type: " + h.responseData.ContentType,
	}

	return respStatus, respHeaders
}

// WriteResponseHeader - формируем и отправляем клиенту заголовки ответа
func (h *HeaderData) WriteResponseHeader(w io.Writer) error {
	respStatus, respHeaders := h.Lines()

	return writeToConn(w, respStatus, respHeaders)
}

// пишем строку статуса и заголовки в клиентский сокет, после них - пустая строка
func writeToConn(w io.Writer, respStatus types.ResponseStatusLine, respHeaders types.ResponseHeaders) error {
	var header strings.Builder

	fmt.Fprintf(&header, "%s %s\n", respStatus.Version, respStatus.Status)

	log.Info("---")
	log.Infof("%s %s", respStatus.Version, respStatus.Status)

	for _, v := range respHeaders {
		header.WriteString(v + "\n")
		log.Info(v)
	}

	log.Info("---")

	header.WriteString("\n")

	if _, err := io.WriteString(w, header.String()); err != nil {
		return fmt.Errorf("заголовки ответа не отправлены: %w", err)
	}

	log.Info("клиенту отправлены заголовки ответа")

	return nil
}
