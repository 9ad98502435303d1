package appointment

import (
	"github.com/ggabbo/gabohealth/pkg/validation"
)

// Schema validates an appointment submission for one booking flow.
type Schema func(*Appointment) validation.Errors

// common holds the checks every flow shares: a chosen physician and a
// usable schedule date.
func common(a *Appointment) validation.Errors {
	e := validation.Errors{}
	e.Length("primaryPhysician", a.PrimaryPhysician, 2, 50,
		"Selecione no mínimo um assistente",
		"Selecione no mínimo um assistente")
	if a.Schedule.IsZero() {
		e.Set("schedule", "Selecione uma data para a consulta")
	}
	return e
}

// CreateSchema validates the patient-facing booking form. The reason is
// required; the note stays optional free text.
func CreateSchema(a *Appointment) validation.Errors {
	e := common(a)
	e.Length("reason", a.Reason, 2, 500,
		"O motivo deve conter no mínimo 2 caractéres",
		"O motivo deve conter no máximo 500 caractéres")
	return e
}

// ScheduleSchema validates the admin confirmation form. Reason and
// cancellation fields are optional there.
func ScheduleSchema(a *Appointment) validation.Errors {
	return common(a)
}

// CancelSchema validates the cancellation form. The cancellation reason is
// the one required field beyond the shared checks.
func CancelSchema(a *Appointment) validation.Errors {
	e := common(a)
	var reason string
	if a.CancellationReason != nil {
		reason = *a.CancellationReason
	}
	e.Length("cancellationReason", reason, 2, 500,
		"A causa deve conter no mínimo 2 caractéres",
		"A causa deve conter no máximo 500 caractéres")
	return e
}

// SchemaFor selects the schema for an action. Exhaustive over the Action
// set; ParseAction already folds unknown tags into ActionSchedule.
func SchemaFor(action Action) Schema {
	switch action {
	case ActionCreate:
		return CreateSchema
	case ActionCancel:
		return CancelSchema
	default:
		return ScheduleSchema
	}
}
