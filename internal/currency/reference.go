package currency

import (
	"fmt"
	"sort"

	"github.com/arthurquine/RB-Exchange-1/internal/models"
)

// статический справочник валют: код -> отображаемые метаданные.
// Неизвестный код не является ошибкой, такая строка рендерится без метаданных.
var reference = map[string]models.CurrencyInfo{
	"DZD": {Code: "DZD", Name: "Algerian Dinar", Symbol: "DA", Flag: "flags/dz.png"},
	"USD": {Code: "USD", Name: "US Dollar", Symbol: "$", Flag: "flags/us.png"},
	"EUR": {Code: "EUR", Name: "Euro", Symbol: "€", Flag: "flags/eu.png"},
	"GBP": {Code: "GBP", Name: "British Pound", Symbol: "£", Flag: "flags/gb.png"},
	"CAD": {Code: "CAD", Name: "Canadian Dollar", Symbol: "C$", Flag: "flags/ca.png"},
	"CHF": {Code: "CHF", Name: "Swiss Franc", Symbol: "CHF", Flag: "flags/ch.png"},
	"TRY": {Code: "TRY", Name: "Turkish Lira", Symbol: "₺", Flag: "flags/tr.png"},
	"AED": {Code: "AED", Name: "UAE Dirham", Symbol: "AED", Flag: "flags/ae.png"},
	"SAR": {Code: "SAR", Name: "Saudi Riyal", Symbol: "SR", Flag: "flags/sa.png"},
	"CNY": {Code: "CNY", Name: "Chinese Yuan", Symbol: "¥", Flag: "flags/cn.png"},
}

// Lookup возвращает справочные данные валюты по коду
func Lookup(code string) (models.CurrencyInfo, bool) {
	info, ok := reference[code]
	return info, ok
}

// All возвращает весь справочник, отсортированный по коду
func All() []models.CurrencyInfo {
	list := make([]models.CurrencyInfo, 0, len(reference))
	for _, info := range reference {
		list = append(list, info)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	return list
}

// FormatAmount форматирует сумму для отображения: символ валюты если код
// известен, иначе сам код суффиксом
func FormatAmount(amount float64, code string) string {
	if info, ok := reference[code]; ok {
		return fmt.Sprintf("%s%.2f", info.Symbol, amount)
	}
	return fmt.Sprintf("%.2f %s", amount, code)
}
