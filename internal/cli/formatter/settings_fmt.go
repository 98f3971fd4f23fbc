package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/bittrack/internal/contract"
	"github.com/alexanderramin/bittrack/internal/domain"
)

// FormatSettings renders theme, payment account, categories and Discord
// notification toggles.
func FormatSettings(resp *contract.SettingsResponse) string {
	s := resp.Settings
	var b strings.Builder

	const w = 15
	b.WriteString(KeyValue("theme", w, ThemeLabel(s.Theme).Render()) + "\n")
	b.WriteString(KeyValue("payment account", w, accountName(resp.Accounts, s.DefaultPaymentAccount)) + "\n")
	if !resp.Saved {
		b.WriteString(StyleYellow.Render("Unsaved changes. Run `bittrack settings save`.") + "\n")
	}

	b.WriteString("\n" + Header("Income Categories") + "\n")
	b.WriteString(categoryTable(s.IncomeCategories))
	b.WriteString("\n" + Header("Expense Categories") + "\n")
	b.WriteString(categoryTable(s.ExpenseCategories))

	b.WriteString("\n" + Header("Discord") + "\n")
	b.WriteString(KeyValue("enabled", w, toggle(s.Discord.Enabled)) + "\n")
	if s.Discord.WebhookURL != "" {
		b.WriteString(KeyValue("webhook", w, Dim(Truncate(s.Discord.WebhookURL, 40))) + "\n")
	}
	for _, kind := range domain.NotificationKinds {
		b.WriteString(KeyValue(Title(string(kind)), w, toggle(s.Discord.Notifications.Enabled(kind))) + "\n")
	}

	return RenderBox("Settings", b.String())
}

func categoryTable(cats []domain.TransactionCategory) string {
	if len(cats) == 0 {
		return Dim("None.") + "\n"
	}
	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		rows = append(rows, []string{Dim(c.ID), Swatch(c.Color) + " " + c.Name, Dim(c.Color)})
	}
	return RenderTable([]string{"ID", "NAME", "COLOR"}, rows)
}

func accountName(accounts []*domain.WalletAccount, id string) string {
	if id == "" {
		return Dim("--")
	}
	for _, a := range accounts {
		if a.ID == id {
			return Bold(a.Name) + " " + Dim(fmt.Sprintf("(%s)", a.ID))
		}
	}
	return StyleRed.Render(contract.UnknownLabel + " " + id)
}

func toggle(on bool) string {
	if on {
		return StyleGreen.Render("● on")
	}
	return StyleDim.Render("○ off")
}
