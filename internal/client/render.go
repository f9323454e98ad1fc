package client

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/MKhiriev/asset-tracker/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var assetColumns = []string{"ID", "ASSET ID", "NAME", "CATEGORY", "STATUS", "ASSIGNED TO", "CREATED"}

const statusColumn = 4

func renderAssets(w io.Writer, assets []models.Asset) error {
	st := newStyles(lipgloss.NewRenderer(w))

	if len(assets) == 0 {
		_, err := fmt.Fprintln(w, st.empty.Render("No assets found"))
		return err
	}

	rows := make([][]string, 0, len(assets))
	for _, a := range assets {
		assignee := "-"
		if a.AssignedTo != nil {
			assignee = *a.AssignedTo
		}
		rows = append(rows, []string{
			strconv.FormatInt(a.ID, 10),
			a.AssetID,
			a.Name,
			string(a.Category),
			string(a.Status),
			assignee,
			a.CreatedAt.Format(time.DateOnly),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.border).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		Headers(assetColumns...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return st.header
			case col == statusColumn && rows[row][col] == string(models.StatusFaulty):
				return st.faulty
			default:
				return st.cell
			}
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
