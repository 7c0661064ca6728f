// Package access — вход в менеджерский экран по общему PIN.
// Сравнение строк как есть: без хэширования, блокировок и лимитов попыток.
package access

const DefaultPIN = "1234"

type Gate struct {
	pin string
}

// NewGate: пустой pin означает "не настроен" — тогда действует DefaultPIN.
func NewGate(pin string) *Gate {
	if pin == "" {
		pin = DefaultPIN
	}
	return &Gate{pin: pin}
}

func (g *Gate) Validate(pin string) bool {
	return pin == g.pin
}
