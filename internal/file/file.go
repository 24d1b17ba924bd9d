// Package file - пакет с функциями для работы с файлами
package file

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-git/go-billy/v5"

	"github.com/Kostushka/web_worker/internal/connection/consts"
	"github.com/Kostushka/web_worker/internal/log"
)

// Open - открываем файл по пути
func Open(fs billy.Filesystem, path string) (billy.File, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть файл %q: %w", path, err)
	}

	return f, nil
}

// ReadAll - читаем файл целиком, файл закрывается сразу после чтения
func ReadAll(fs billy.Filesystem, path string) ([]byte, error) {
	f, err := Open(fs, path)
	if err != nil {
		return nil, err
	}
	defer Close(f)

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать файл %q: %w", path, err)
	}

	return data, nil
}

// Send - отправляем клиенту файл кусками по BufSize байт
func Send(w io.Writer, r io.Reader) error {
	// буфер фиксированного размера: файл может не поместиться в память целиком
	fileBuf := make([]byte, consts.BufSize)

	for {
		n, err := r.Read(fileBuf)
		// записать прочитанное до проверки ошибки: Read может вернуть данные вместе с EOF
		if n > 0 {
			if _, werr := w.Write(fileBuf[:n]); werr != nil {
				return werr
			}
		}
		// читаем файл, пока не встретим EOF
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return err
		}
	}

	log.Info("клиенту отправлено тело ответа")

	return nil
}

// Close - закрытие файла
func Close(c io.Closer) {
	if err := c.Close(); err != nil {
		log.Error(err)
	}
}
