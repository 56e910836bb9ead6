package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	dbmodels "it-requests-backend/models/db"
)

type Provider interface {
	ExportRequestRegister(list []dbmodels.Request) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var requestHeaders = []string{"Code", "Requester", "Department", "Type", "Topic", "Title", "Priority", "Status", "Created"}

func (i impl) ExportRequestRegister(list []dbmodels.Request) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, requestHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build xlsx header")
	}
	if len(list) != 0 {
		row, err = writeRequestData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to build xlsx data rows")
		}
	}
	f.SetSheetName(sheet, "Requests")
	return f.WriteToBuffer()
}

func writeRequestData(f *excelize.File, sheet string, list []dbmodels.Request, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(requestHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Code"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Code); err != nil {
			return row, err
		}

		// "Requester"
		col++
		if err := writeColumn(f, sheet, col, row, item.RequesterName); err != nil {
			return row, err
		}

		// "Department"
		col++
		if item.Department != nil {
			if err := writeColumn(f, sheet, col, row, item.Department.Name); err != nil {
				return row, err
			}
		}

		// "Type"
		col++
		if item.Type != nil {
			if err := writeColumn(f, sheet, col, row, item.Type.Name); err != nil {
				return row, err
			}
		}

		// "Topic"
		col++
		if item.Topic != nil {
			if err := writeColumn(f, sheet, col, row, item.Topic.Name); err != nil {
				return row, err
			}
		}

		// "Title"
		col++
		if err := writeColumn(f, sheet, col, row, item.Title); err != nil {
			return row, err
		}

		// "Priority"
		col++
		if item.Priority != nil {
			if err := writeColumn(f, sheet, col, row, item.Priority.Name); err != nil {
				return row, err
			}
		}

		// "Status"
		col++
		if err := writeColumn(f, sheet, col, row, item.Status.ToHuman()); err != nil {
			return row, err
		}

		// "Created"
		col++
		if !item.CreatedAt.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format("02.01.2006")); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
