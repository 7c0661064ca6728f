// Package report — выгрузки для менеджера в Excel.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Spok95/supplyhub/internal/domain/orders"
	"github.com/Spok95/supplyhub/internal/domain/usage"
)

const (
	ordersSheet = "Orders"
	usageSheet  = "Usage"
)

// OrdersWorkbook: лист Orders — по строке на позицию заказа, лист Usage —
// журнал "взял с полки". Заказ с битым JSON выгружается одной строкой с пометкой.
func OrdersWorkbook(list []orders.Order, logs []usage.Log, loc *time.Location) (*bytes.Buffer, error) {
	if loc == nil {
		loc = time.UTC
	}
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), ordersSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := []interface{}{"order_id", "created_at", "status", "group", "item", "item_id"}
	if err := f.SetSheetRow(ordersSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("orders header: %w", err)
	}

	row := 2
	for _, o := range list {
		created := o.CreatedAt.In(loc).Format("2006-01-02 15:04")
		lines, err := o.Lines()
		if err != nil {
			lines = []orders.Line{{ItemName: "(unreadable items)"}}
		}
		for _, l := range lines {
			excelRow := []interface{}{o.ID, created, o.Status, l.GroupName, l.ItemName, l.ItemID}
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetSheetRow(ordersSheet, cell, &excelRow); err != nil {
				return nil, fmt.Errorf("orders row %d: %w", row, err)
			}
			row++
		}
	}

	if _, err := f.NewSheet(usageSheet); err != nil {
		return nil, fmt.Errorf("usage sheet: %w", err)
	}
	uHeader := []interface{}{"timestamp", "item", "item_id", "quantity"}
	if err := f.SetSheetRow(usageSheet, "A1", &uHeader); err != nil {
		return nil, fmt.Errorf("usage header: %w", err)
	}
	for i, l := range logs {
		itemID := ""
		if l.ItemID != nil {
			itemID = *l.ItemID
		}
		excelRow := []interface{}{l.Timestamp.In(loc).Format("2006-01-02 15:04"), l.ItemName, itemID, l.Quantity}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(usageSheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("usage row %d: %w", i+2, err)
		}
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

func FileName(now time.Time) string {
	return fmt.Sprintf("orders_%s.xlsx", now.Format("20060102_150405"))
}
