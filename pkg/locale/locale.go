// Package locale is the localization seam for every user-facing message.
// The product ships in Spanish; handlers and usecases resolve message IDs
// through a Localizer instead of hardcoding strings.
package locale

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

const (
	MsgBusinessNotFound    = "business_not_found"
	MsgReviewNotFound      = "review_not_found"
	MsgReplyNotFound       = "reply_not_found"
	MsgReplyEmpty          = "reply_empty"
	MsgReplyFailed         = "reply_failed"
	MsgReplyEditFailed     = "reply_edit_failed"
	MsgReplyDeleteFailed   = "reply_delete_failed"
	MsgReportFailed        = "report_failed"
	MsgReportPartial       = "report_partial"
	MsgReportStatusInvalid = "report_status_invalid"
	MsgReviewsLoadFailed   = "reviews_load_failed"
	MsgCatalogLoading      = "catalog_loading"
	MsgCatalogUnavailable  = "catalog_unavailable"
	MsgCatalogEmpty        = "catalog_empty"
	MsgNotificationMissing = "notification_not_found"
	MsgConcurrentUpdate    = "concurrent_update"
	MsgInvalidInput        = "invalid_input"
)

var spanish = []*i18n.Message{
	{ID: MsgBusinessNotFound, Other: "Comercio no encontrado"},
	{ID: MsgReviewNotFound, Other: "Reseña no encontrada"},
	{ID: MsgReplyNotFound, Other: "La reseña no tiene respuesta"},
	{ID: MsgReplyEmpty, Other: "La respuesta no puede estar vacía"},
	{ID: MsgReplyFailed, Other: "Error al responder la reseña"},
	{ID: MsgReplyEditFailed, Other: "Error al editar la respuesta"},
	{ID: MsgReplyDeleteFailed, Other: "Error al eliminar la respuesta"},
	{ID: MsgReportFailed, Other: "Error al reportar la reseña"},
	{ID: MsgReportPartial, Other: "La reseña fue reportada pero no pudo ser marcada"},
	{ID: MsgReportStatusInvalid, Other: "Estado de reporte inválido"},
	{ID: MsgReviewsLoadFailed, Other: "Error al cargar las reseñas"},
	{ID: MsgCatalogLoading, Other: "Cargando comercios"},
	{ID: MsgCatalogUnavailable, Other: "No se pudieron cargar los comercios"},
	{ID: MsgCatalogEmpty, Other: "No se encontraron comercios que coincidan con tu búsqueda"},
	{ID: MsgNotificationMissing, Other: "Notificación no encontrada"},
	{ID: MsgConcurrentUpdate, Other: "La reseña fue modificada por otra operación, intenta de nuevo"},
	{ID: MsgInvalidInput, Other: "Datos inválidos"},
}

type Localizer struct {
	localizer *i18n.Localizer
}

func New(lang string) (*Localizer, error) {
	bundle := i18n.NewBundle(language.Spanish)
	if err := bundle.AddMessages(language.Spanish, spanish...); err != nil {
		return nil, err
	}

	return &Localizer{
		localizer: i18n.NewLocalizer(bundle, lang),
	}, nil
}

// T resolves a message ID; unknown IDs fall back to the ID itself so a
// missing translation never breaks a response.
func (l *Localizer) T(id string) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}
