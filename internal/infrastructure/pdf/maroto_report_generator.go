// Package pdf implementa el reporte PDF de calificaciones que descarga el
// dueño de una tienda.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda │ Dirección                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Promedio (2 decimales) + total de calificaciones   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Calificación | Usuario | Email | Fecha               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/Pranshau/Rating-App/internal/application/usecase"
	"github.com/Pranshau/Rating-App/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Ensure MarotoReportGenerator implements usecase.RatingsReportGenerator.
var _ usecase.RatingsReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator genera el reporte con Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateRatingsReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateRatingsReport(
	store *entity.Store,
	ratings []*entity.StoreRating,
	average decimal.Decimal,
	count int64,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de calificaciones", true).
		Build()

	m := maroto.New(cfg)

	// Header
	m.AddRows(
		row.New(10).Add(
			text.NewCol(8, store.Name, props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			}),
			text.NewCol(4, store.Address, props.Text{
				Size: 9, Align: align.Right, Color: colorGray,
			}),
		),
		row.New(2).Add(line.NewCol(12)),
	)

	// Resumen
	m.AddRows(
		row.New(8).Add(
			text.NewCol(6, fmt.Sprintf("Promedio: %s / 5", average.StringFixed(2)), props.Text{
				Size: 11, Style: fontstyle.Bold,
			}),
			text.NewCol(6, fmt.Sprintf("Total de calificaciones: %d", count), props.Text{
				Size: 11, Align: align.Right,
			}),
		),
		row.New(2).Add(line.NewCol(12)),
	)

	// Tabla
	m.AddRows(row.New(7).Add(
		headerCol(2, "Calificación"),
		headerCol(4, "Usuario"),
		headerCol(4, "Email"),
		headerCol(2, "Fecha"),
	))
	for _, r := range ratings {
		m.AddRows(row.New(6).Add(
			text.NewCol(2, fmt.Sprintf("%d / 5", r.Value), props.Text{Size: 9}),
			text.NewCol(4, r.RaterName, props.Text{Size: 9}),
			text.NewCol(4, r.RaterEmail, props.Text{Size: 9, Color: colorGray}),
			text.NewCol(2, r.CreatedAt.Format("2006-01-02"), props.Text{Size: 9}),
		))
	}
	if len(ratings) == 0 {
		m.AddRows(row.New(6).Add(
			text.NewCol(12, "Esta tienda aún no tiene calificaciones.", props.Text{
				Size: 9, Color: colorGray, Align: align.Center,
			}),
		))
	}

	document, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF: %w", err)
	}
	return document.GetBytes(), nil
}

func headerCol(size int, label string) core.Col {
	return text.NewCol(size, label, props.Text{
		Size: 9, Style: fontstyle.Bold, Color: colorPrimary,
	})
}
