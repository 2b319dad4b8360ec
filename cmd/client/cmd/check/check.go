package check

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// CheckCmd - родительская команда для операций с uptime-проверками
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Управление uptime-проверками",
	Long: `Создание, просмотр, изменение и удаление проверок.

Все команды требуют токен: сначала выполните "uptime-cli token create".`,
}

// checkFlags поля проверки, общие для create и update.
type checkFlags struct {
	protocol string
	url      string
	method   string
	codes    []int
	timeout  int
}

func (f *checkFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.protocol, "protocol", "", "протокол: http или https")
	fs.StringVar(&f.url, "url", "", "адрес без протокола, например example.com/status")
	fs.StringVar(&f.method, "method", "", "метод: get, post, put или delete")
	fs.IntSliceVar(&f.codes, "code", nil, "успешные коды ответа, можно повторять")
	fs.IntVar(&f.timeout, "timeout", 0, "таймаут в секундах, от 1 до 5")
}
