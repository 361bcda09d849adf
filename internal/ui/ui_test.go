package ui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/mmeshcher/kanomjeen-system/internal/repository"
	"github.com/mmeshcher/kanomjeen-system/internal/service"
)

func runSession(t *testing.T, svc *service.Service, lines ...string) string {
	t.Helper()

	var out bytes.Buffer
	u := New(svc, zap.NewNop(), strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, "บาท")

	if err := u.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	return out.String()
}

func seedOrder(t *testing.T, svc *service.Service, name, location string) string {
	t.Helper()

	svc.SetCustomerName(name)
	svc.SetPhone("0812345678")
	svc.SetLocation(location)

	order, err := svc.Submit()
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	return order.ID
}

func TestCreateOrderAndBoard(t *testing.T) {
	svc := service.NewService(repository.NewMemoryRepository())

	out := runSession(t, svc,
		"n",
		// имя, фейсбук, телефон, зона (2 = บัวขาว)
		"สมศรี", "somsri.fb", "0812345678", "2",
		// количества в порядке меню: nam_plara=2, egg=1
		"2", "", "1", "", "", "", "", "", "", "", "",
		// оплачено / доставлено
		"y", "",
		"b",
		"q",
	)

	if len(svc.Orders()) != 1 {
		t.Fatalf("len(Orders()) = %d, want 1", len(svc.Orders()))
	}
	order := svc.Orders()[0]
	if order.Location != "บัวขาว" || !order.Paid || order.Delivered {
		t.Fatalf("unexpected order: %+v", order)
	}

	for _, want := range []string{
		"บันทึกออเดอร์แล้ว",
		"[1] บัวขาว",
		"[1.1] สมศรี (0812345678)",
		"FB: somsri.fb",
		"ขนมจีนน้ำปลาร้า x 2",
		"ไข่ปี้ง x 1",
		"ยอดรวม: 130 บาท",
		"✓ ชำระแล้ว",
		"ยังไม่ส่ง",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output must contain %q\n%s", want, out)
		}
	}

	// ขนมจีนน้ำกะปิ не заказывали, в карточке его быть не должно
	if strings.Contains(out, "ขนมจีนน้ำกะปิ x") {
		t.Fatalf("zero-quantity items must not be listed\n%s", out)
	}
}

func TestIncompleteFormRejected(t *testing.T) {
	svc := service.NewService(repository.NewMemoryRepository())

	out := runSession(t, svc,
		"n",
		// все поля формы остаются пустыми
		"", "", "", "",
		"", "", "", "", "", "", "", "", "", "", "",
		"", "",
		"q",
	)

	if len(svc.Orders()) != 0 {
		t.Fatalf("incomplete form must not create an order")
	}
	if !strings.Contains(out, "ยังไม่บันทึก") {
		t.Fatalf("output must report the rejected draft\n%s", out)
	}
}

func TestToggleAndDelete(t *testing.T) {
	svc := service.NewService(repository.NewMemoryRepository())
	seedOrder(t, svc, "สมศรี", "บัวขาว")

	out := runSession(t, svc,
		"p 9.9",
		"p 1.1",
		"x 1.1",
		"b",
		"q",
	)

	if len(svc.Orders()) != 0 {
		t.Fatalf("order must be deleted, got %d", len(svc.Orders()))
	}
	for _, want := range []string{
		"ไม่มีกลุ่มที่ 9",
		"สมศรี: ✓ ชำระแล้ว",
		"ลบออเดอร์แล้ว",
		"ยังไม่มีออเดอร์",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output must contain %q\n%s", want, out)
		}
	}
}

func TestEditKeepsValuesOnEmptyInput(t *testing.T) {
	svc := service.NewService(repository.NewMemoryRepository())
	id := seedOrder(t, svc, "สมศรี", "บัวขาว")

	runSession(t, svc,
		"e 1.1",
		// новое имя, остальные поля сохраняют прежние значения
		"สมหญิง", "", "", "",
		"", "", "", "", "", "", "", "", "", "", "",
		"", "",
		"q",
	)

	orders := svc.Orders()
	if len(orders) != 1 {
		t.Fatalf("edit must not change store length, got %d", len(orders))
	}
	if orders[0].ID != id {
		t.Fatalf("edit must keep the order identity")
	}
	if orders[0].CustomerName != "สมหญิง" {
		t.Fatalf("CustomerName = %q, want สมหญิง", orders[0].CustomerName)
	}
	if orders[0].Phone != "0812345678" || orders[0].Location != "บัวขาว" {
		t.Fatalf("empty input must keep previous values: %+v", orders[0])
	}
}

func TestUnknownCommand(t *testing.T) {
	svc := service.NewService(repository.NewMemoryRepository())

	out := runSession(t, svc, "z", "q")

	if !strings.Contains(out, "ไม่รู้จักคำสั่ง") {
		t.Fatalf("output must report the unknown command\n%s", out)
	}
}
