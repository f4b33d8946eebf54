package router

import (
	"time"

	"bizmanage/backend/foundation/web"
	"bizmanage/backend/internal/auth"
	"bizmanage/backend/internal/middleware"
	"bizmanage/backend/internal/pkg/repository/postgresql"
	"bizmanage/backend/internal/repository/postgres/attendance"
	"bizmanage/backend/internal/repository/postgres/companyInfo"
	"bizmanage/backend/internal/repository/postgres/customer"
	"bizmanage/backend/internal/repository/postgres/employee"
	"bizmanage/backend/internal/repository/postgres/purchase"
	"bizmanage/backend/internal/repository/postgres/report"
	"bizmanage/backend/internal/repository/postgres/sale"
	"bizmanage/backend/internal/repository/postgres/supplier"
	"bizmanage/backend/internal/repository/postgres/user"
	rediscache "bizmanage/backend/internal/repository/redis"
	"bizmanage/backend/internal/service/wage"

	"github.com/redis/go-redis/v9"

	attendance_controller "bizmanage/backend/internal/controller/http/v1/attendance"
	auth_controller "bizmanage/backend/internal/controller/http/v1/auth"
	companyInfo_controller "bizmanage/backend/internal/controller/http/v1/companyInfo"
	customer_controller "bizmanage/backend/internal/controller/http/v1/customer"
	employee_controller "bizmanage/backend/internal/controller/http/v1/employee"
	purchase_controller "bizmanage/backend/internal/controller/http/v1/purchase"
	report_controller "bizmanage/backend/internal/controller/http/v1/report"
	sale_controller "bizmanage/backend/internal/controller/http/v1/sale"
	supplier_controller "bizmanage/backend/internal/controller/http/v1/supplier"
	user_controller "bizmanage/backend/internal/controller/http/v1/user"
	wage_controller "bizmanage/backend/internal/controller/http/v1/wage"
)

const dashboardCacheTTL = 60 * time.Second

type Router struct {
	*web.App
	postgresDB *postgresql.Database
	redisDB    *redis.Client
	port       string
	auth       *auth.Auth
	baseUrl    string
}

func NewRouter(
	app *web.App,
	postgresDB *postgresql.Database,
	redisDB *redis.Client,
	port string,
	auth *auth.Auth,
	baseUrl string,
) *Router {
	return &Router{
		app,
		postgresDB,
		redisDB,
		port,
		auth,
		baseUrl,
	}
}

func (r Router) Init() error {
	r.HandleMethodNotAllowed = true
	r.Use(middleware.CORS(r.baseUrl))

	// - postgresql
	userPostgres := user.NewRepository(r.postgresDB)
	employeePostgres := employee.NewRepository(r.postgresDB)
	attendancePostgres := attendance.NewRepository(r.postgresDB)
	customerPostgres := customer.NewRepository(r.postgresDB)
	salePostgres := sale.NewRepository(r.postgresDB)
	purchasePostgres := purchase.NewRepository(r.postgresDB)
	supplierPostgres := supplier.NewRepository(r.postgresDB)
	companyInfoPostgres := companyInfo.NewRepository(r.postgresDB)
	reportPostgres := report.NewRepository(r.postgresDB)

	// - redis
	dashboardCache := rediscache.NewCache(r.redisDB, dashboardCacheTTL)

	// service
	wageDataSource := wage.NewRepositorySource(employeePostgres, attendancePostgres)
	wageService := wage.NewService(wageDataSource)

	// controller
	authController := auth_controller.NewController(userPostgres, r.auth)
	userController := user_controller.NewController(userPostgres)
	employeeController := employee_controller.NewController(employeePostgres)
	attendanceController := attendance_controller.NewController(attendancePostgres)
	customerController := customer_controller.NewController(customerPostgres)
	saleController := sale_controller.NewController(salePostgres)
	purchaseController := purchase_controller.NewController(purchasePostgres)
	supplierController := supplier_controller.NewController(supplierPostgres)
	companyInfoController := companyInfo_controller.NewController(companyInfoPostgres)
	wageController := wage_controller.NewController(wageService, companyInfoPostgres)
	reportController := report_controller.NewController(reportPostgres, dashboardCache)

	// #auth
	r.Post("/api/v1/sign-in", authController.SignIn)
	r.Post("/api/v1/refresh-token", authController.RefreshToken)

	// #user
	r.Get("/api/v1/user/list", userController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/user/:id", userController.GetDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/v1/user/create", userController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/user/:id", userController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/user/:id", userController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #employee
	r.Get("/api/v1/employee/list", employeeController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleDashboard))
	r.Get("/api/v1/employee/:id", employeeController.GetDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/employee/:id/badge", employeeController.GetBadge, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/employee/export", employeeController.ExportExcel, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/v1/employee/create", employeeController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/employee/:id", employeeController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/employee/:id", employeeController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #attendance
	r.Get("/api/v1/attendance/list", attendanceController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleEmployee, auth.RoleDashboard))
	r.Get("/api/v1/attendance/:id", attendanceController.GetDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/v1/attendance/create", attendanceController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/attendance/:id", attendanceController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/attendance/:id", attendanceController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #wage
	r.Get("/api/v1/wage/calculate", wageController.CalculateWages, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/wage/bonus", wageController.CalculateBonus, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/wage/export", wageController.ExportWagesExcel, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/wage/bonus/export", wageController.ExportBonusExcel, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/wage/payslip", wageController.ExportPayslipPDF, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/wage/bonus/slip", wageController.ExportBonusPDF, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #customer
	r.Get("/api/v1/customer/list", customerController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/customer/:id", customerController.GetDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/v1/customer/create", customerController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/customer/:id", customerController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/customer/:id", customerController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #sale
	r.Get("/api/v1/sale/list", saleController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/sale/:id", saleController.GetDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/v1/sale/create", saleController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/sale/:id", saleController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/sale/:id", saleController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #purchase
	r.Get("/api/v1/purchase/list", purchaseController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/purchase/:id", purchaseController.GetDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/v1/purchase/create", purchaseController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/purchase/:id", purchaseController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/purchase/:id", purchaseController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #supplier
	r.Get("/api/v1/supplier/list", supplierController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/supplier/:id", supplierController.GetDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/v1/supplier/create", supplierController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/supplier/:id", supplierController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/supplier/:id", supplierController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #companyInfo
	r.Get("/api/v1/company_info", companyInfoController.GetInfo, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Put("/api/v1/company_info/:id", companyInfoController.UpdateAll, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #report
	r.Get("/api/v1/report/dashboard", reportController.GetDashboard, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleDashboard))

	return r.Run(r.port)
}
