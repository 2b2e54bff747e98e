package employee

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const rosterSheet = "Employees"

var rosterHeader = []any{
	"ID", "Employee ID", "Name", "Designation", "Date of Birth", "Joining Date",
	"Payroll Name", "Team", "Grade", "PL", "CL", "SL", "EL",
}

// Export writes an XLSX roster of every employee to w.
func (s *service) Export(ctx context.Context, w io.Writer) error {
	s.logger.Debug("export employees requested")

	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("export employees fetch failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", rosterSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(rosterSheet, "A1", &rosterHeader); err != nil {
		return err
	}

	for i, e := range empls {
		row := []any{
			e.ID, e.EmployeeID, e.Name, deref(e.Designation), deref(formatDate(e.DOB)), deref(formatDate(e.JoiningDate)),
			deref(e.PayrollName), deref(e.Team), deref(e.Grade), e.PL, e.CL, e.SL, e.EL,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(rosterSheet, cell, &row); err != nil {
			return fmt.Errorf("write roster row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		s.logger.Error("export employees write failed", zap.Error(err))
		return err
	}

	s.logger.Info("export employees success", zap.Int("count", len(empls)))
	return nil
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
