package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	bookingModel "parcel-booking/models/booking"
)

const sheetName = "Bookings"

var headers = []string{
	"Booking ID", "Receiver Name", "Receiver Address", "Receiver Mobile",
	"Weight (g)", "Delivery Type", "Packing", "Service Cost", "Status",
	"Booked At",
}

// BookingsWorkbook renders a customer's bookings as an xlsx workbook and
// returns the file bytes, ready to stream as an attachment.
func BookingsWorkbook(bookings []bookingModel.Booking) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, header)
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for i, b := range bookings {
		row := i + 2
		_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), b.BookingID)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), b.ReceiverName)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), b.ReceiverAddress)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), b.ReceiverMobile)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), b.WeightInGram)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), b.DeliveryType.String())
		_ = f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), b.PackingPreference.String())
		_ = f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), b.ServiceCost.StringFixed(2))
		_ = f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), b.Status.DisplayName())
		_ = f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), b.CreatedAt.Format("02-01-2006 15:04"))
	}

	_ = f.SetColWidth(sheetName, "A", "A", 20)
	_ = f.SetColWidth(sheetName, "B", "D", 25)
	_ = f.SetColWidth(sheetName, "E", "I", 15)
	_ = f.SetColWidth(sheetName, "J", "J", 20)

	_ = f.DeleteSheet("Sheet1")

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
