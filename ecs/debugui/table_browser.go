package debugui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/creeps/ecs"
)

// TableBrowser lists the entities of one table. Describe renders a row's
// columns; the first column is always the entity id.
type TableBrowser[T any] struct {
	Title    string
	Columns  []string
	Describe func(id ecs.EntityId, value *T) []string

	table              *ecs.Table[T]
	selectedEntityId   ecs.EntityId
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
}

func NewTableBrowser[T any](title string, table *ecs.Table[T], maxEntitiesPerPage int, columns []string, describe func(ecs.EntityId, *T) []string) *TableBrowser[T] {
	return &TableBrowser[T]{
		Title:              title,
		Columns:            columns,
		Describe:           describe,
		table:              table,
		maxEntitiesPerPage: maxEntitiesPerPage,
	}
}

// TableRow is one entity and its described columns.
type TableRow struct {
	Id    ecs.EntityId
	Cells []string
}

// Rows returns the filtered rows sorted by entity id.
func (tb *TableBrowser[T]) Rows() []TableRow {
	ids := tb.table.Ids()
	slices.Sort(ids)

	filterLower := strings.ToLower(tb.filterText)
	rows := make([]TableRow, 0, len(ids))
	for _, id := range ids {
		row := TableRow{Id: id, Cells: tb.Describe(id, tb.table.Get(id))}
		if filterLower != "" {
			text := fmt.Sprintf("%d %s", id, strings.ToLower(strings.Join(row.Cells, " ")))
			if !strings.Contains(text, filterLower) {
				continue
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// SetFilter keeps only rows containing text, case-insensitively.
func (tb *TableBrowser[T]) SetFilter(text string) {
	tb.filterText = text
	tb.currentPage = 0
}

func (tb *TableBrowser[T]) Render() {
	if !imgui.BeginV(tb.Title, nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##search", "Search...", &tb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		tb.SetFilter("")
	}

	rows := tb.Rows()
	totalPages := max(1, (len(rows)+tb.maxEntitiesPerPage-1)/tb.maxEntitiesPerPage)
	tb.currentPage = min(tb.currentPage, totalPages-1)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", int32(len(tb.Columns)+1), tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity ID")
		for _, column := range tb.Columns {
			imgui.TableSetupColumn(column)
		}
		imgui.TableHeadersRow()

		startIdx := tb.currentPage * tb.maxEntitiesPerPage
		endIdx := min(startIdx+tb.maxEntitiesPerPage, len(rows))

		for _, row := range rows[startIdx:endIdx] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := tb.selectedEntityId == row.Id
			if imgui.SelectableBoolV(fmt.Sprintf("%d", row.Id), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				tb.selectedEntityId = row.Id
			}

			for _, cell := range row.Cells {
				imgui.TableNextColumn()
				imgui.Text(cell)
			}
		}

		imgui.EndTable()
	}

	if len(rows) > tb.maxEntitiesPerPage {
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", tb.currentPage+1, totalPages, len(rows)))
		imgui.SameLine()
		if imgui.Button("Prev") && tb.currentPage > 0 {
			tb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && tb.currentPage < totalPages-1 {
			tb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(rows)))
	}

	imgui.End()
}

func (tb *TableBrowser[T]) GetSelectedEntity() ecs.EntityId {
	return tb.selectedEntityId
}
