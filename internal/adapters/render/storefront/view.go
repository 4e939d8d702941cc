package storefront

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/maelys-dev/sweetshop-cli/internal/domain"
)

func renderCartView(lines []domain.CartLine, subtotal float64, s styles) string {
	out := []string{
		s.title.Render("Your Cart"),
		s.header.Render(fmt.Sprintf("items: %d", len(lines))),
	}

	if len(lines) == 0 {
		out = append(out, s.empty.Render("Your cart is empty."))
		return lipgloss.JoinVertical(lipgloss.Left, out...)
	}

	for _, line := range lines {
		out = append(out, s.section.Render(renderCartLine(line, s)))
	}

	out = append(out, s.section.Render(s.total.Render(fmt.Sprintf("Subtotal: %s", money(subtotal)))))
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

func renderCartLine(line domain.CartLine, s styles) string {
	name := s.name.Render(productLabel(line.Product, s))
	qty := s.detail.Render(fmt.Sprintf("x%d", line.Quantity))
	price := s.price.Render(money(line.Subtotal()))
	meta := s.meta.Render(fmt.Sprintf("line %s", line.ID))

	return fmt.Sprintf("%s %s  %s  %s", name, qty, price, meta)
}

// RenderWishlist lists the saved-for-later products.
func RenderWishlist(entries []domain.WishlistEntry) string {
	s := newStyles()
	out := []string{
		s.title.Render("Your Wishlist"),
		s.header.Render(fmt.Sprintf("saved: %d", len(entries))),
	}

	if len(entries) == 0 {
		out = append(out, s.empty.Render("Nothing saved for later."))
		return lipgloss.JoinVertical(lipgloss.Left, out...)
	}

	for _, entry := range entries {
		line := fmt.Sprintf("%s %s  %s",
			s.heart.Render("♥"),
			s.name.Render(productLabel(entry.Product, s)),
			s.price.Render(money(entry.Product.Price)),
		)
		out = append(out, s.section.Render(line))
	}

	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

// RenderProducts lists catalog products.
func RenderProducts(products []domain.ProductSummary) string {
	s := newStyles()
	out := []string{
		s.title.Render("Sweetshop Catalog"),
		s.header.Render(fmt.Sprintf("products: %d", len(products))),
	}

	if len(products) == 0 {
		out = append(out, s.empty.Render("No products available."))
		return lipgloss.JoinVertical(lipgloss.Left, out...)
	}

	for _, product := range products {
		line := fmt.Sprintf("%s  %s  %s",
			s.name.Render(productLabel(product, s)),
			s.price.Render(money(product.Price)),
			s.meta.Render(string(product.ID)),
		)
		if product.Brand != "" {
			line += "  " + s.meta.Render(product.Brand)
		}
		out = append(out, s.section.Render(line))
	}

	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

// RenderOrders lists order history, newest formatting left to the backend.
func RenderOrders(orders []domain.Order) string {
	s := newStyles()
	out := []string{
		s.title.Render("Your Orders"),
		s.header.Render(fmt.Sprintf("orders: %d", len(orders))),
	}

	if len(orders) == 0 {
		out = append(out, s.empty.Render("No orders yet."))
		return lipgloss.JoinVertical(lipgloss.Left, out...)
	}

	for _, order := range orders {
		head := fmt.Sprintf("%s  %s  %s",
			s.name.Render(fmt.Sprintf("Order %s", order.ID)),
			s.total.Render(money(order.Total)),
			s.statusTag.Render(string(order.Status)),
		)
		if !order.PlacedAt.IsZero() {
			head += "  " + s.meta.Render(order.PlacedAt.Format("2006-01-02 15:04"))
		}

		parts := []string{head}
		for _, item := range order.Items {
			parts = append(parts, s.detail.Render(fmt.Sprintf("  %s x%d", itemName(item), item.Quantity)))
		}
		out = append(out, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

// RenderProfile shows the logged-in identity.
func RenderProfile(user domain.UserRecord) string {
	s := newStyles()
	out := []string{
		s.title.Render(user.Name),
		s.detail.Render(user.Email),
		s.meta.Render(fmt.Sprintf("role: %s", user.Role)),
	}
	if user.Blocked {
		out = append(out, s.warning.Render("This account is blocked."))
	}

	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

// RenderStats shows the management dashboard counters.
func RenderStats(stats domain.StoreStats) string {
	s := newStyles()

	users := fmt.Sprintf("Users     %d", stats.Users)
	if stats.Blocked > 0 {
		users += "  " + s.warning.Render(fmt.Sprintf("(%d blocked)", stats.Blocked))
	}

	out := []string{
		s.title.Render("Store Dashboard"),
		s.section.Render(s.detail.Render(users)),
		s.section.Render(s.detail.Render(fmt.Sprintf("Products  %d", stats.Products))),
		s.section.Render(s.detail.Render(fmt.Sprintf("Orders    %d", stats.Orders))),
		s.section.Render(s.total.Render(fmt.Sprintf("Revenue   %s", money(stats.Revenue)))),
	}

	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

func productLabel(p domain.ProductSummary, s styles) string {
	name := p.Name
	if name == "" {
		name = string(p.ID)
	}
	if !p.Active {
		return s.inactive.Render(name)
	}
	return name
}

func itemName(line domain.CartLine) string {
	if line.Product.Name != "" {
		return line.Product.Name
	}
	return string(line.Product.ID)
}

func money(amount float64) string {
	formatted := fmt.Sprintf("%.2f", amount)
	formatted = strings.TrimSuffix(formatted, ".00")
	return "₹" + formatted
}
