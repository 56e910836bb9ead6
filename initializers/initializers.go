package initializers

import (
	"context"
	"it-requests-backend/config"
	"it-requests-backend/fiberlog"
	approvalhandler "it-requests-backend/lib/approval"
	assignmenthandler "it-requests-backend/lib/assignment"
	authhandler "it-requests-backend/lib/auth"
	departmentprovider "it-requests-backend/lib/dicts/department"
	employeeprovider "it-requests-backend/lib/dicts/employee"
	priorityprovider "it-requests-backend/lib/dicts/priority"
	programprovider "it-requests-backend/lib/dicts/program"
	reqtypeprovider "it-requests-backend/lib/dicts/reqtype"
	statusprovider "it-requests-backend/lib/dicts/status"
	topicprovider "it-requests-backend/lib/dicts/topic"
	xlsexport "it-requests-backend/lib/export/xls"
	ratinghandler "it-requests-backend/lib/rating"
	requesthandler "it-requests-backend/lib/requests"
	subtaskhandler "it-requests-backend/lib/subtask"
	uathandler "it-requests-backend/lib/uat"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitDictCache(ctx)
	InitS3(ctx)
	InitSmtp()
	departmentprovider.NewHandler()
	employeeprovider.NewHandler()
	topicprovider.NewHandler()
	reqtypeprovider.NewHandler()
	statusprovider.NewHandler()
	priorityprovider.NewHandler()
	programprovider.NewHandler()
	xlsexport.NewHandler()
	requesthandler.NewHandler()
	approvalhandler.NewHandler()
	assignmenthandler.NewHandler()
	subtaskhandler.NewHandler()
	uathandler.NewHandler()
	ratinghandler.NewHandler()
	authhandler.NewHandler()
}
