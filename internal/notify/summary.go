package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/Spok95/supplyhub/internal/domain/orders"
)

type section struct {
	Name  string
	Items []string
}

// DisplayName: "Group - Variant", а для одиночных товаров (имя группы
// совпадает с именем товара) просто имя товара.
func DisplayName(groupName, itemName string) string {
	if groupName == itemName {
		return itemName
	}
	return groupName + " - " + itemName
}

// groupLines группирует позиции по имени группы в порядке первого появления.
func groupLines(lines []orders.Line) []section {
	idx := map[string]int{}
	var out []section
	for _, l := range lines {
		i, ok := idx[l.GroupName]
		if !ok {
			i = len(out)
			idx[l.GroupName] = i
			out = append(out, section{Name: l.GroupName})
		}
		out[i].Items = append(out[i].Items, l.ItemName)
	}
	return out
}

// Subject: "<Company> Order #<первые 8 символов id> - <n> items".
func Subject(company, orderID string, n int) string {
	short := orderID
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("%s Order #%s - %d items", company, short, n)
}

// Summary — текстовая сводка заказа (пишется в лог и уходит в чат-транспорты).
func Summary(lines []orders.Line, at time.Time) string {
	var b strings.Builder
	b.WriteString("=== SUPPLY ORDER ===\n")
	fmt.Fprintf(&b, "Date: %s\n\n", at.Format("2006-01-02 15:04:05"))
	for _, sec := range groupLines(lines) {
		fmt.Fprintf(&b, "%s:\n", sec.Name)
		for _, name := range sec.Items {
			fmt.Fprintf(&b, "  - %s\n", name)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Total items: %d\n", len(lines))
	b.WriteString("==================")
	return b.String()
}

var emailTmpl = template.Must(template.New("order").Parse(`<html>
  <body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f9f9f9;">
    <div style="background: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1);">
      <h1 style="color: #f59e0b; border-bottom: 3px solid #f59e0b; padding-bottom: 15px; margin-top: 0;">{{.Company}} Order</h1>
      <div style="background: #fff8e6; padding: 15px; border-radius: 8px; margin-bottom: 20px;">
        <p style="color: #666; margin: 0;"><strong>Order ID:</strong> {{.OrderID}}<br><strong>Date:</strong> {{.Date}}</p>
      </div>
      <h2 style="color: #333; margin-bottom: 15px;">Items Requested:</h2>
      <table style="width: 100%; border-collapse: collapse; margin-bottom: 20px;">
{{- range .Sections}}
        <tr style="background: #f59e0b;"><td style="padding: 12px 15px; font-weight: bold; color: white; font-size: 16px;">{{.Name}}</td></tr>
{{- range .Items}}
        <tr style="background: white;"><td style="padding: 12px 15px 12px 25px; border-bottom: 1px solid #eee; font-size: 15px;"><span style="color: #333;">{{.}}</span></td></tr>
{{- end}}
{{- end}}
      </table>
      <div style="background: #fef3c7; padding: 15px; border-radius: 8px; text-align: center; margin-bottom: 25px;">
        <span style="font-size: 18px; color: #92400e;"><strong>Total Items: {{.Total}}</strong></span>
      </div>
    </div>
  </body>
</html>
`))

type emailView struct {
	Company  string
	OrderID  string
	Date     string
	Sections []section
	Total    int
}

// RenderHTML собирает HTML-письмо; строки товаров уже в виде DisplayName.
func RenderHTML(company, orderID string, lines []orders.Line, at time.Time) (string, error) {
	secs := groupLines(lines)
	for i := range secs {
		for j, name := range secs[i].Items {
			secs[i].Items[j] = DisplayName(secs[i].Name, name)
		}
	}
	var buf bytes.Buffer
	err := emailTmpl.Execute(&buf, emailView{
		Company:  company,
		OrderID:  orderID,
		Date:     at.Format("2006-01-02 15:04:05"),
		Sections: secs,
		Total:    len(lines),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
