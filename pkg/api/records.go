package api

// Доменные записи сервера NutriPlan. Клиент обращается с ними как с
// непрозрачными значениями: целостность ссылок (plan_id, paciente_id и т.д.)
// проверяет backend.

// Plan представляет план питания
type Plan struct {
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion,omitempty"`
	ID          int64   `json:"id"`
	Precio      float64 `json:"precio"`
}

// Dieta представляет диету, привязанную к плану
type Dieta struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
	ID          int64  `json:"id"`
	PlanID      int64  `json:"plan_id"`
}

// Paciente представляет пациента
type Paciente struct {
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	ID     int64  `json:"id"`
	PlanID int64  `json:"plan_id,omitempty"`
}

// Nutricionista представляет нутрициолога
type Nutricionista struct {
	Nombre       string `json:"nombre"`
	Email        string `json:"email"`
	Especialidad string `json:"especialidad,omitempty"`
	ID           int64  `json:"id"`
}

// Pago представляет платеж пациента за план
type Pago struct {
	Fecha      string  `json:"fecha"`  // дата платежа (как отдает сервер)
	Estado     string  `json:"estado"` // pendiente / pagado / ...
	ID         int64   `json:"id"`
	PacienteID int64   `json:"paciente_id"`
	PlanID     int64   `json:"plan_id"`
	Monto      float64 `json:"monto"`
}

// Seguimiento представляет запись отслеживания веса пациента
type Seguimiento struct {
	Fecha      string  `json:"fecha"`
	Notas      string  `json:"notas,omitempty"`
	ID         int64   `json:"id"`
	PacienteID int64   `json:"paciente_id"`
	Peso       float64 `json:"peso"` // вес в килограммах
}
