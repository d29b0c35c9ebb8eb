package enrichment

import (
	"strconv"
	"strings"
)

// okvedSection is one top-level section of the OKVED 2 classifier, keyed by
// the range of two-digit division codes it spans.
type okvedSection struct {
	from, to int
	letter   string
	name     string
}

// okvedSections is the bundled fallback table: top-level sections A–U of the
// national industry classifier. Division → section resolution needs only the
// leading two digits of a code.
var okvedSections = []okvedSection{
	{1, 3, "A", "Сельское, лесное хозяйство, охота, рыболовство и рыбоводство"},
	{5, 9, "B", "Добыча полезных ископаемых"},
	{10, 33, "C", "Обрабатывающие производства"},
	{35, 35, "D", "Обеспечение электрической энергией, газом и паром"},
	{36, 39, "E", "Водоснабжение, водоотведение, сбор и утилизация отходов"},
	{41, 43, "F", "Строительство"},
	{45, 47, "G", "Торговля оптовая и розничная; ремонт автотранспортных средств"},
	{49, 53, "H", "Транспортировка и хранение"},
	{55, 56, "I", "Деятельность гостиниц и предприятий общественного питания"},
	{58, 63, "J", "Деятельность в области информации и связи"},
	{64, 66, "K", "Деятельность финансовая и страховая"},
	{68, 68, "L", "Деятельность по операциям с недвижимым имуществом"},
	{69, 75, "M", "Деятельность профессиональная, научная и техническая"},
	{77, 82, "N", "Деятельность административная и сопутствующие услуги"},
	{84, 84, "O", "Государственное управление и обеспечение военной безопасности"},
	{85, 85, "P", "Образование"},
	{86, 88, "Q", "Деятельность в области здравоохранения и социальных услуг"},
	{90, 93, "R", "Деятельность в области культуры, спорта и развлечений"},
	{94, 96, "S", "Предоставление прочих видов услуг"},
	{97, 98, "T", "Деятельность домашних хозяйств"},
	{99, 99, "U", "Деятельность экстерриториальных организаций"},
}

// lookupSection resolves a dotted OKVED code ("62.01") to its top-level
// section description. ok is false for malformed or unassigned codes.
func lookupSection(code string) (letter, name string, ok bool) {
	head, _, _ := strings.Cut(code, ".")
	div, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return "", "", false
	}
	for _, s := range okvedSections {
		if div >= s.from && div <= s.to {
			return s.letter, s.name, true
		}
	}
	return "", "", false
}
