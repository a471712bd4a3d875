package timerecord

import "github.com/BruksfildServices01/timeclock/internal/httperr"

// ===============================
// Estado diario del empleado
// ===============================

type DayStatus string

const (
	StatusTrabajado  DayStatus = "Trabajado"
	StatusBaja       DayStatus = "Baja"
	StatusAusente    DayStatus = "Ausente"
	StatusVacaciones DayStatus = "Vacaciones"
)

// IsValidStatus valida contra el conjunto cerrado de estados.
func IsValidStatus(s DayStatus) bool {
	switch s {
	case StatusTrabajado, StatusBaja, StatusAusente, StatusVacaciones:
		return true
	}
	return false
}

// IsNonWorking define si el estado del día prohíbe fichar.
func IsNonWorking(s DayStatus) bool {
	switch s {
	case StatusBaja, StatusAusente, StatusVacaciones:
		return true
	}
	return false
}

// CanCheckIn valida el estado del día antes de un fichaje de entrada.
func CanCheckIn(s DayStatus) error {
	if IsNonWorking(s) {
		return httperr.ErrBusinessMsg(
			"non_working_day",
			"No puedes fichar hoy: tu estado es «"+string(s)+"».",
		)
	}
	return nil
}

// ===============================
// Categoría de trabajo
// ===============================

type Category string

const (
	CategoryCocina   Category = "Cocina"
	CategoryDelivery Category = "Delivery"
	CategoryReparto  Category = "Reparto"
	CategorySala     Category = "Sala"
)

func Categories() []Category {
	return []Category{
		CategoryCocina,
		CategoryDelivery,
		CategoryReparto,
		CategorySala,
	}
}

// ParseCategory devuelve nil para cadena vacía (sin asignar) y
// error para valores fuera del conjunto.
func ParseCategory(s string) (*Category, error) {
	if s == "" {
		return nil, nil
	}
	c := Category(s)
	for _, known := range Categories() {
		if c == known {
			return &c, nil
		}
	}
	return nil, httperr.ErrBusiness("invalid_category")
}
