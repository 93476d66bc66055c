package cli

// Роли, которые выдает backend NutriPlan
const (
	RoleAdmin    = "admin"
	RolePaciente = "paciente"
)

// Имена экранов клиента
const (
	viewDashboard      = "dashboard"
	viewPlanes         = "planes"
	viewDietas         = "dietas"
	viewPacientes      = "pacientes"
	viewNutricionistas = "nutricionistas"
	viewPagos          = "pagos"
	viewSeguimiento    = "seguimiento"
)

// viewRoles — единственное место, где экраны сопоставлены ролям.
// Пустая роль означает "любой аутентифицированный пользователь".
// Команды не сравнивают роли сами: все решения идут через authz.CanEnter.
var viewRoles = map[string]string{
	viewDashboard:      "",
	viewSeguimiento:    "",
	viewPlanes:         RoleAdmin,
	viewDietas:         RoleAdmin,
	viewPacientes:      RoleAdmin,
	viewNutricionistas: RoleAdmin,
	viewPagos:          RoleAdmin,
}
