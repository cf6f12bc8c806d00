// ABOUTME: MCP tool implementations for fitness records.
// ABOUTME: Exposes add, list, get, update, and delete over the record store.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_record",
		Description: "Log a fitness session (name, age, weight, date, exercise, duration, calories)",
	}, s.handleAddRecord)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_records",
		Description: "List every logged fitness session in insertion order",
	}, s.handleListRecords)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_record",
		Description: "Get one fitness session by ID",
	}, s.handleGetRecord)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_record",
		Description: "Change fields of a fitness session by ID; omitted fields keep their values",
	}, s.handleUpdateRecord)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_record",
		Description: "Permanently delete a fitness session by ID",
	}, s.handleDeleteRecord)
}

// Tool input/output types

type addRecordInput struct {
	Name     string  `json:"name" jsonschema:"Name of the person"`
	Age      int     `json:"age" jsonschema:"Age in years (1-100)"`
	Weight   float64 `json:"weight" jsonschema:"Body weight in kilograms (at least 1.0)"`
	Date     string  `json:"date,omitempty" jsonschema:"Session date as YYYY-MM-DD, defaults to today"`
	Exercise string  `json:"exercise" jsonschema:"Exercise performed"`
	Duration int     `json:"duration" jsonschema:"Duration in minutes (at least 1)"`
	Calories int     `json:"calories" jsonschema:"Calories burned (at least 1)"`
}

type recordOutput struct {
	Record  *models.Record `json:"record,omitempty"`
	Message string         `json:"message"`
}

type listRecordsInput struct{}

type listRecordsOutput struct {
	Records []*models.Record `json:"records"`
	Count   int              `json:"count"`
	Message string           `json:"message,omitempty"`
}

type idInput struct {
	ID int64 `json:"id" jsonschema:"Record ID"`
}

type updateRecordInput struct {
	ID       int64    `json:"id" jsonschema:"Record ID"`
	Name     *string  `json:"name,omitempty" jsonschema:"New name"`
	Age      *int     `json:"age,omitempty" jsonschema:"New age in years (1-100)"`
	Weight   *float64 `json:"weight,omitempty" jsonschema:"New weight in kilograms"`
	Date     *string  `json:"date,omitempty" jsonschema:"New date as YYYY-MM-DD"`
	Exercise *string  `json:"exercise,omitempty" jsonschema:"New exercise"`
	Duration *int     `json:"duration,omitempty" jsonschema:"New duration in minutes"`
	Calories *int     `json:"calories,omitempty" jsonschema:"New calories burned"`
}

type changeOutput struct {
	ID      int64  `json:"id"`
	Changed bool   `json:"changed"`
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleAddRecord(ctx context.Context, req *mcp.CallToolRequest, input addRecordInput) (*mcp.CallToolResult, recordOutput, error) {
	r := models.NewRecord(input.Name, input.Exercise).
		WithAge(input.Age).
		WithWeight(input.Weight).
		WithSession(input.Duration, input.Calories)
	if input.Date != "" {
		r.Date = input.Date
	}

	if err := r.Validate(); err != nil {
		return nil, recordOutput{}, err
	}

	id, err := s.repo.Insert(r)
	if err != nil {
		return nil, recordOutput{}, fmt.Errorf("failed to add record: %w", err)
	}
	r.ID = id

	return nil, recordOutput{
		Record:  r,
		Message: fmt.Sprintf("Added %s session for %s (ID: %d)", r.Exercise, r.Name, id),
	}, nil
}

func (s *Server) handleListRecords(ctx context.Context, req *mcp.CallToolRequest, input listRecordsInput) (*mcp.CallToolResult, listRecordsOutput, error) {
	records, err := s.repo.List()
	if err != nil {
		return nil, listRecordsOutput{}, fmt.Errorf("failed to list records: %w", err)
	}

	out := listRecordsOutput{Records: records, Count: len(records)}
	if len(records) == 0 {
		out.Message = "No records available."
	}
	return nil, out, nil
}

func (s *Server) handleGetRecord(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, recordOutput, error) {
	r, err := s.repo.Get(input.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, recordOutput{}, fmt.Errorf("record not found: %d", input.ID)
		}
		return nil, recordOutput{}, fmt.Errorf("failed to get record: %w", err)
	}

	return nil, recordOutput{Record: r, Message: fmt.Sprintf("Record %d", r.ID)}, nil
}

func (s *Server) handleUpdateRecord(ctx context.Context, req *mcp.CallToolRequest, input updateRecordInput) (*mcp.CallToolResult, changeOutput, error) {
	current, err := s.repo.Get(input.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, changeOutput{
				ID:      input.ID,
				Message: fmt.Sprintf("Nothing changed: no record with ID %d", input.ID),
			}, nil
		}
		return nil, changeOutput{}, fmt.Errorf("failed to get record: %w", err)
	}

	applyUpdate(current, input)
	if err := current.Validate(); err != nil {
		return nil, changeOutput{}, err
	}

	changed, err := s.repo.Update(input.ID, current)
	if err != nil {
		return nil, changeOutput{}, fmt.Errorf("failed to update record: %w", err)
	}

	out := changeOutput{ID: input.ID, Changed: changed}
	if changed {
		out.Message = fmt.Sprintf("Updated record %d", input.ID)
	} else {
		out.Message = fmt.Sprintf("Nothing changed: no record with ID %d", input.ID)
	}
	return nil, out, nil
}

func (s *Server) handleDeleteRecord(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, changeOutput, error) {
	changed, err := s.repo.Delete(input.ID)
	if err != nil {
		return nil, changeOutput{}, fmt.Errorf("failed to delete record: %w", err)
	}

	out := changeOutput{ID: input.ID, Changed: changed}
	if changed {
		out.Message = fmt.Sprintf("Deleted record %d", input.ID)
	} else {
		out.Message = fmt.Sprintf("Nothing changed: no record with ID %d", input.ID)
	}
	return nil, out, nil
}

func applyUpdate(r *models.Record, in updateRecordInput) {
	if in.Name != nil {
		r.Name = *in.Name
	}
	if in.Age != nil {
		r.Age = *in.Age
	}
	if in.Weight != nil {
		r.Weight = *in.Weight
	}
	if in.Date != nil {
		r.Date = *in.Date
	}
	if in.Exercise != nil {
		r.Exercise = *in.Exercise
	}
	if in.Duration != nil {
		r.Duration = *in.Duration
	}
	if in.Calories != nil {
		r.Calories = *in.Calories
	}
}
