package controllers

import (
	"hospitalflow/handlers"
	"hospitalflow/middlewares"
	"hospitalflow/models"

	"github.com/gin-gonic/gin"
)

// SetupHospitalRoutes registers the catalog, patient, workflow, billing, and
// lab routes. Every route requires a valid token; mutating routes are further
// scoped by role.
func SetupHospitalRoutes(
	router *gin.Engine,
	serviceTypeHandler *handlers.ServiceTypeHandler,
	serviceHandler *handlers.ServiceHandler,
	doctorHandler *handlers.DoctorHandler,
	pricingHandler *handlers.PricingHandler,
	patientHandler *handlers.PatientHandler,
	consultationHandler *handlers.ConsultationHandler,
	visitHandler *handlers.VisitHandler,
	billingHandler *handlers.BillingHandler,
	labHandler *handlers.LabHandler,
) {
	authed := router.Group("/", middlewares.TokenAuthMiddleware())

	// Read routes: any authenticated staff member
	authed.GET("/service_types", serviceTypeHandler.GetAllServiceTypes)
	authed.GET("/service_types/:id", serviceTypeHandler.GetServiceTypeByID)
	authed.GET("/services", serviceHandler.GetAllServices)
	authed.GET("/services/:id", serviceHandler.GetServiceByID)
	authed.GET("/doctors", doctorHandler.GetAllDoctors)
	authed.GET("/doctors/:id", doctorHandler.GetDoctorByID)
	authed.GET("/pricing/resolve", pricingHandler.ResolvePrice)
	authed.GET("/doctor_services", pricingHandler.GetAllMappings)
	authed.GET("/doctor_services/:id", pricingHandler.GetMappingByID)
	authed.GET("/patients", patientHandler.GetAllPatients)
	authed.GET("/patients/:patientId", patientHandler.GetPatientByID)
	authed.GET("/patients/:patientId/consultations", consultationHandler.GetConsultationsByPatient)
	authed.GET("/patients/:patientId/bills", billingHandler.GetBillsByPatient)
	authed.GET("/consultations", consultationHandler.GetAllConsultations)
	authed.GET("/consultations/:id", consultationHandler.GetConsultationByID)
	authed.GET("/consultations/:id/visits", visitHandler.GetVisitsByConsultation)
	authed.GET("/visits", visitHandler.GetAllVisits)
	authed.GET("/visits/:id", visitHandler.GetVisitByID)
	authed.GET("/visits/:id/lab_orders", labHandler.GetLabOrdersByVisit)
	authed.GET("/doctors/:id/visits", visitHandler.GetVisitsByDoctor)
	authed.GET("/bills", billingHandler.GetAllBills)
	authed.GET("/bills/:id", billingHandler.GetBillByID)
	authed.GET("/lab_tests", labHandler.GetAllLabTests)
	authed.GET("/lab_tests/:id", labHandler.GetLabTestByID)
	authed.GET("/lab_orders", labHandler.GetAllLabOrders)
	authed.GET("/lab_orders/:id", labHandler.GetLabOrderByID)

	// Catalog management: admin only
	catalog := router.Group("/",
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware(models.RoleAdmin),
	)
	catalog.POST("/service_types", serviceTypeHandler.CreateServiceType)
	catalog.PUT("/service_types/:id", serviceTypeHandler.UpdateServiceType)
	catalog.DELETE("/service_types/:id", serviceTypeHandler.DeleteServiceType)
	catalog.POST("/services", serviceHandler.CreateService)
	catalog.PUT("/services/:id", serviceHandler.UpdateService)
	catalog.DELETE("/services/:id", serviceHandler.DeleteService)
	catalog.POST("/doctors", doctorHandler.CreateDoctor)
	catalog.PUT("/doctors/:id", doctorHandler.UpdateDoctor)
	catalog.DELETE("/doctors/:id", doctorHandler.DeleteDoctor)
	catalog.POST("/doctor_services", pricingHandler.CreateMapping)
	catalog.PUT("/doctor_services/:id", pricingHandler.UpdateMapping)
	catalog.DELETE("/doctor_services/:id", pricingHandler.DeleteMapping)
	catalog.POST("/lab_tests", labHandler.CreateLabTest)

	// Front desk: registration, booking, follow-ups, transfers
	reception := router.Group("/",
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware(models.RoleReception, models.RoleAdmin),
	)
	reception.POST("/patients", patientHandler.CreatePatient)
	reception.PUT("/patients/:patientId", patientHandler.UpdatePatient)
	reception.POST("/consultations", consultationHandler.OpenConsultation)
	reception.POST("/bookings", consultationHandler.BookConsultation)
	reception.POST("/visits", visitHandler.CreateVisit)

	// Clinical workflow: doctors push visits forward, transfer patients to
	// other doctors, and order labs
	clinical := router.Group("/",
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware(models.RoleDoctor, models.RoleAdmin),
	)
	clinical.POST("/visits/:id/advance", visitHandler.AdvanceVisitStatus)
	clinical.POST("/visits/:id/transfer", visitHandler.TransferVisit)
	clinical.PUT("/visits/:id/notes", visitHandler.RecordVisitNotes)
	clinical.POST("/lab_orders", labHandler.CreateLabOrder)
	clinical.PUT("/lab_orders/:id/status", labHandler.UpdateLabOrderStatus)

	// Billing desk: bills and payments
	financial := router.Group("/",
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware(models.RoleFinancial, models.RoleAdmin),
	)
	financial.POST("/bills", billingHandler.CreateBill)
	financial.POST("/bills/:id/payments", billingHandler.RecordPayment)
}
