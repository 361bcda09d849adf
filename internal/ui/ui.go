// Package ui реализует терминальный интерфейс приёма заказов:
// форму заказа и доску заказов по зонам доставки.
package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mmeshcher/kanomjeen-system/internal/catalog"
	"github.com/mmeshcher/kanomjeen-system/internal/model"
	"github.com/mmeshcher/kanomjeen-system/internal/pricing"
	"github.com/mmeshcher/kanomjeen-system/internal/service"
)

// OrderService определяет контракт бизнес-логики, используемый интерфейсом.
type OrderService interface {
	SetCustomerName(v string)
	SetFacebook(v string)
	SetPhone(v string)
	SetLocation(v string)
	SetPaid(v bool)
	SetDelivered(v bool)
	SetItemQuantity(menuKey, raw string) int
	Submit() (model.Order, error)
	TogglePaid(id string) (model.Order, error)
	ToggleDelivered(id string) (model.Order, error)
	DeleteOrder(id string) error
	BeginEdit(id string) error
	CancelEdit()
	Draft() model.Draft
	Editing() bool
	Orders() []model.Order
	GroupedOrders() []service.Group
}

// UI читает команды оператора и выводит форму заказа и доску по зонам доставки.
type UI struct {
	service  OrderService
	logger   *zap.Logger
	in       *bufio.Scanner
	out      io.Writer
	currency string
}

// New создаёт терминальный интерфейс поверх указанного сервиса.
// Ввод и вывод передаются явно, чтобы интерфейс можно было тестировать.
func New(svc OrderService, logger *zap.Logger, in io.Reader, out io.Writer, currency string) *UI {
	return &UI{
		service:  svc,
		logger:   logger,
		in:       bufio.NewScanner(in),
		out:      out,
		currency: currency,
	}
}

// Run обрабатывает команды до конца ввода, команды выхода или отмены контекста.
func (u *UI) Run(ctx context.Context) error {
	u.printHelp()

	for {
		if ctx.Err() != nil {
			return nil
		}

		fmt.Fprint(u.out, "> ")
		line, ok := u.readLine()
		if !ok {
			return nil
		}
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "q":
			return nil
		case "h":
			u.printHelp()
		case "n":
			u.runForm()
		case "b":
			u.printBoard()
		case "p", "d", "e", "x":
			if len(fields) < 2 {
				fmt.Fprintf(u.out, "ต้องระบุออเดอร์ เช่น %s 1.2\n", fields[0])
				continue
			}
			u.runOrderCommand(fields[0], fields[1])
		default:
			fmt.Fprintf(u.out, "ไม่รู้จักคำสั่ง %q (h = ดูคำสั่งทั้งหมด)\n", fields[0])
		}
	}
}

func (u *UI) printHelp() {
	fmt.Fprintln(u.out, "คำสั่ง:")
	fmt.Fprintln(u.out, "  n      ฟอร์มสั่งซื้อ (ออเดอร์ใหม่)")
	fmt.Fprintln(u.out, "  b      ดูออเดอร์ตามสถานที่จัดส่ง")
	fmt.Fprintln(u.out, "  p g.n  ชำระเงิน / ยกเลิกชำระเงิน")
	fmt.Fprintln(u.out, "  d g.n  ส่งของ / ยกเลิกส่งของ")
	fmt.Fprintln(u.out, "  e g.n  แก้ไขออเดอร์")
	fmt.Fprintln(u.out, "  x g.n  ลบออเดอร์")
	fmt.Fprintln(u.out, "  q      ออก")
}

func (u *UI) readLine() (string, bool) {
	if !u.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(u.in.Text()), true
}

// runOrderCommand выполняет команду над одним заказом, указанным ссылкой
// вида "группа.номер" с доски.
func (u *UI) runOrderCommand(cmd, ref string) {
	id, err := u.resolveRef(ref)
	if err != nil {
		fmt.Fprintln(u.out, err)
		return
	}

	switch cmd {
	case "p":
		o, err := u.service.TogglePaid(id)
		if err != nil {
			fmt.Fprintln(u.out, "ไม่สำเร็จ:", err)
			return
		}
		fmt.Fprintf(u.out, "%s: %s\n", o.CustomerName, paidLabel(o.Paid))
		u.logger.Info("payment flag toggled", zap.String("order_id", o.ID), zap.Bool("paid", o.Paid))
	case "d":
		o, err := u.service.ToggleDelivered(id)
		if err != nil {
			fmt.Fprintln(u.out, "ไม่สำเร็จ:", err)
			return
		}
		fmt.Fprintf(u.out, "%s: %s\n", o.CustomerName, deliveredLabel(o.Delivered))
		u.logger.Info("delivery flag toggled", zap.String("order_id", o.ID), zap.Bool("delivered", o.Delivered))
	case "e":
		if err := u.service.BeginEdit(id); err != nil {
			fmt.Fprintln(u.out, "ไม่สำเร็จ:", err)
			return
		}
		u.runForm()
	case "x":
		if err := u.service.DeleteOrder(id); err != nil {
			fmt.Fprintln(u.out, "ไม่สำเร็จ:", err)
			return
		}
		fmt.Fprintln(u.out, "ลบออเดอร์แล้ว")
		u.logger.Info("order deleted", zap.String("order_id", id))
	}
}

// resolveRef преобразует ссылку вида "группа.номер" в идентификатор заказа,
// сверяясь со свежим состоянием доски.
func (u *UI) resolveRef(ref string) (string, error) {
	parts := strings.SplitN(ref, ".", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("ระบุออเดอร์เป็น กลุ่ม.ลำดับ เช่น 1.2 (ได้ %q)", ref)
	}

	g, gErr := strconv.Atoi(parts[0])
	n, nErr := strconv.Atoi(parts[1])
	if gErr != nil || nErr != nil {
		return "", fmt.Errorf("ระบุออเดอร์เป็น กลุ่ม.ลำดับ เช่น 1.2 (ได้ %q)", ref)
	}

	groups := u.service.GroupedOrders()
	if g < 1 || g > len(groups) {
		return "", fmt.Errorf("ไม่มีกลุ่มที่ %d", g)
	}
	orders := groups[g-1].Orders
	if n < 1 || n > len(orders) {
		return "", fmt.Errorf("ไม่มีออเดอร์ที่ %d.%d", g, n)
	}
	return orders[n-1].ID, nil
}

// runForm последовательно запрашивает поля заказа и фиксирует черновик.
// В режиме редактирования пустой ввод сохраняет текущее значение поля.
func (u *UI) runForm() {
	editing := u.service.Editing()
	draft := u.service.Draft()

	if editing {
		fmt.Fprintln(u.out, "แก้ไขออเดอร์ (Enter = ค่าเดิม)")
	} else {
		fmt.Fprintln(u.out, "ฟอร์มสั่งซื้อ")
	}

	name, ok := u.promptText("ชื่อผู้สั่ง", draft.CustomerName)
	if !ok {
		u.abortForm()
		return
	}
	u.service.SetCustomerName(name)

	facebook, ok := u.promptText("ชื่อเฟสบุ๊ก", draft.Facebook)
	if !ok {
		u.abortForm()
		return
	}
	u.service.SetFacebook(facebook)

	phone, ok := u.promptText("เบอร์โทร", draft.Phone)
	if !ok {
		u.abortForm()
		return
	}
	u.service.SetPhone(phone)

	location, ok := u.promptLocation(draft.Location)
	if !ok {
		u.abortForm()
		return
	}
	u.service.SetLocation(location)

	for _, item := range catalog.Items {
		label := fmt.Sprintf("%s (%d%s)", item.Name, item.Price, u.currency)
		if item.Note != "" {
			label = fmt.Sprintf("%s (%d%s, %s)", item.Name, item.Price, u.currency, item.Note)
		}

		current := ""
		if qty := draft.Items[item.Key]; qty != 0 {
			current = strconv.Itoa(qty)
		}

		raw, ok := u.promptText(label, current)
		if !ok {
			u.abortForm()
			return
		}
		u.service.SetItemQuantity(item.Key, raw)
	}

	paid, ok := u.promptBool("ชำระเงินแล้ว", draft.Paid)
	if !ok {
		u.abortForm()
		return
	}
	u.service.SetPaid(paid)

	delivered, ok := u.promptBool("ส่งของแล้ว", draft.Delivered)
	if !ok {
		u.abortForm()
		return
	}
	u.service.SetDelivered(delivered)

	order, err := u.service.Submit()
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			fmt.Fprintf(u.out, "ยังไม่บันทึก: กรอกข้อมูลไม่ครบ (%s)\n", strings.Join(vErr.Missing, ", "))
			u.logger.Warn("draft rejected", zap.Strings("missing", vErr.Missing))
			return
		}
		fmt.Fprintln(u.out, "บันทึกไม่สำเร็จ:", err)
		u.logger.Error("submit failed", zap.Error(err))
		return
	}

	if editing {
		fmt.Fprintln(u.out, "แก้ไขออเดอร์แล้ว")
	} else {
		fmt.Fprintln(u.out, "บันทึกออเดอร์แล้ว")
	}
	u.logger.Info("order saved",
		zap.String("order_id", order.ID),
		zap.String("location", order.Location),
		zap.Int("total", pricing.Total(order.Items)),
		zap.Bool("edited", editing),
	)
}

func (u *UI) abortForm() {
	u.service.CancelEdit()
	fmt.Fprintln(u.out, "ยกเลิกฟอร์ม")
}

// promptText выводит подсказку и читает строку. Пустой ввод возвращает
// текущее значение. Второй результат равен false при конце ввода.
func (u *UI) promptText(label, current string) (string, bool) {
	if current != "" {
		fmt.Fprintf(u.out, "%s [%s]: ", label, current)
	} else {
		fmt.Fprintf(u.out, "%s: ", label)
	}

	line, ok := u.readLine()
	if !ok {
		return "", false
	}
	if line == "" {
		return current, true
	}
	return line, true
}

// promptLocation показывает нумерованный список зон доставки и читает выбор:
// номер зоны, её название или пустой ввод для текущего значения.
func (u *UI) promptLocation(current string) (string, bool) {
	fmt.Fprintln(u.out, "เลือกสถานที่จัดส่ง:")
	for i, loc := range catalog.Locations {
		fmt.Fprintf(u.out, "  %2d) %s\n", i+1, loc)
	}

	for {
		line, ok := u.promptText("สถานที่จัดส่ง", current)
		if !ok {
			return "", false
		}
		if line == current {
			return current, true
		}
		if n, err := strconv.Atoi(line); err == nil {
			if n >= 1 && n <= len(catalog.Locations) {
				return catalog.Locations[n-1], true
			}
			fmt.Fprintf(u.out, "ไม่มีสถานที่หมายเลข %d\n", n)
			continue
		}
		if catalog.IsLocation(line) {
			return line, true
		}
		fmt.Fprintf(u.out, "ไม่รู้จักสถานที่ %q\n", line)
	}
}

// promptBool читает ответ y/n; пустой ввод возвращает текущее значение.
func (u *UI) promptBool(label string, current bool) (bool, bool) {
	hint := "n"
	if current {
		hint = "y"
	}
	fmt.Fprintf(u.out, "%s (y/n) [%s]: ", label, hint)

	line, ok := u.readLine()
	if !ok {
		return false, false
	}
	switch strings.ToLower(line) {
	case "y":
		return true, true
	case "n":
		return false, true
	default:
		return current, true
	}
}

// printBoard выводит заказы, сгруппированные по зонам доставки.
func (u *UI) printBoard() {
	groups := u.service.GroupedOrders()
	if len(groups) == 0 {
		fmt.Fprintln(u.out, "ยังไม่มีออเดอร์")
		return
	}

	for gi, g := range groups {
		fmt.Fprintf(u.out, "[%d] %s\n", gi+1, g.Location)
		for oi, o := range g.Orders {
			fmt.Fprintf(u.out, "  [%d.%d] %s (%s)\n", gi+1, oi+1, o.CustomerName, o.Phone)
			if o.Facebook != "" {
				fmt.Fprintf(u.out, "        FB: %s\n", o.Facebook)
			}
			for _, item := range catalog.Items {
				if qty := o.Items[item.Key]; qty > 0 {
					fmt.Fprintf(u.out, "        %s x %d\n", item.Name, qty)
				}
			}
			fmt.Fprintf(u.out, "        ยอดรวม: %d %s\n", pricing.Total(o.Items), u.currency)
			fmt.Fprintf(u.out, "        %s | %s\n", paidLabel(o.Paid), deliveredLabel(o.Delivered))
		}
	}
}

func paidLabel(paid bool) string {
	if paid {
		return "✓ ชำระแล้ว"
	}
	return "ยังไม่ชำระ"
}

func deliveredLabel(delivered bool) string {
	if delivered {
		return "✓ ส่งแล้ว"
	}
	return "ยังไม่ส่ง"
}
