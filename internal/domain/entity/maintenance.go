package entity

// Estados de una ocorrência de manutenção.
const (
	MaintenanceOpen       = "Por resolver"
	MaintenanceInProgress = "Em andamento"
	MaintenanceResolved   = "Resolvido"
)

// MaintenanceOccurrence ocorrência de manutenção de un imóvel (solo se cuenta por estado).
type MaintenanceOccurrence struct {
	ID         string
	PropertyID string
	Status     string
}
