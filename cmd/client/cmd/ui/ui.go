// Package ui вывод результатов и ввод паролей для команд клиента.
package ui

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Success печатает сообщение об успешной операции.
func Success(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(w, color.GreenString("✓ "+format, args...))
}

func Warn(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(w, color.YellowString("⚠ "+format, args...))
}

// JSON печатает v с отступами.
func JSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("ошибка сериализации: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// Password запрашивает пароль без эха. Если stdin не терминал, читается одна строка.
func Password(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return readLine(os.Stdin)
	}

	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("ошибка чтения пароля: %w", err)
	}
	return string(password), nil
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("ошибка чтения пароля: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
