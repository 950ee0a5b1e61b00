// Package term renders the storefront's page surface onto a terminal. It is
// the CLI's stand-in for the markup regions the engine mutates: the total
// line, the phone error indicator, the message area, and the orders table.
package term

import (
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/cakehouse/storefront-client/internal/core/domain"
	"github.com/cakehouse/storefront-client/internal/core/ports"
)

// createdAtLayout renders timestamps day-first, as the site does.
const createdAtLayout = "02.01.2006 15:04:05"

// Surface implements ports.Document and ports.Navigator for a terminal.
// A region that the current "page" does not show is simply never written,
// so nothing here errors on absent markup.
type Surface struct {
	mu  sync.Mutex
	out io.Writer

	// current page, updated by Go; read by the CLI loop.
	page ports.Page
}

func NewSurface(out io.Writer) *Surface {
	return &Surface{out: out, page: ports.PageStorefront}
}

func (s *Surface) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, format+"\n", args...)
}

func (s *Surface) SetTotal(total int) {
	s.printf("Общая стоимость: %d руб", total)
}

func (s *Surface) ShowPhoneError(visible bool) {
	if visible {
		s.printf("Введите корректный номер телефона в формате +7 (XXX) XXX-XX-XX")
	}
}

func (s *Surface) ResetOrderForm() {
	// Terminal forms are one-shot; there are no fields to blank.
}

func (s *Surface) AppendMessage(msg domain.Message) {
	marker := "✓"
	if msg.Kind == domain.MessageError {
		marker = "✗"
	}
	s.printf("%s %s", marker, msg.Text)
}

func (s *Surface) RemoveMessage(uuid.UUID) {
	// Printed lines cannot be unprinted; expiry is a no-op here.
}

func (s *Surface) ClearOrders() {
	s.printf("%-4s %-20s %-18s %-16s %-4s %-20s %-10s %s",
		"ID", "Имя", "Телефон", "Торт", "Кол", "Детали", "Сумма", "Создан")
}

func (s *Surface) AppendOrderRow(rec domain.OrderRecord) {
	details := rec.Details
	if details == "" {
		details = domain.TextNoDetailsPlaceholder
	}
	created := ""
	if !rec.CreatedAt.IsZero() {
		created = rec.CreatedAt.Local().Format(createdAtLayout)
	}
	s.printf("%-4d %-20s %-18s %-16s %-4d %-20s %-7d руб %s",
		rec.ID, rec.Name, rec.Phone, rec.Product, rec.Quantity, details, rec.TotalCost, created)
}

func (s *Surface) SetAdminLinkVisible(visible bool) {
	if visible {
		s.printf("[доступна панель администратора: storefront orders]")
	}
}

func (s *Surface) SetAuthControls(loggedIn bool) {
	if loggedIn {
		s.printf("[вы вошли; выход: storefront logout]")
	}
}

// Go records the navigation target. The CLI runs one page per invocation,
// so navigation just tells the user where they landed.
func (s *Surface) Go(page ports.Page) {
	s.mu.Lock()
	s.page = page
	s.mu.Unlock()
	s.printf("→ страница: %s.html", page)
}

// Page returns the page the last navigation landed on.
func (s *Surface) Page() ports.Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}
