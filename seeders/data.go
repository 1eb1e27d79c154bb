package seeders

// Fixed ids so the seeders can reference each other across steps and reruns.
const (
	seedAdminID      = "0c8f1c3a-1111-4c6a-9f58-000000000001"
	seedManagerID    = "0c8f1c3a-1111-4c6a-9f58-000000000002"
	seedTechMayaID   = "0c8f1c3a-1111-4c6a-9f58-000000000003"
	seedTechIgorID   = "0c8f1c3a-1111-4c6a-9f58-000000000004"
	seedRequesterID  = "0c8f1c3a-1111-4c6a-9f58-000000000005"
	seedMechanicsID  = "1d9a2b4c-2222-4d7b-8a69-000000000001"
	seedElectricsID  = "1d9a2b4c-2222-4d7b-8a69-000000000002"
	seedPressID      = "2e0b3c5d-3333-4e8c-9b7a-000000000001"
	seedCNCID        = "2e0b3c5d-3333-4e8c-9b7a-000000000002"
	seedForkliftID   = "2e0b3c5d-3333-4e8c-9b7a-000000000003"
	seedReqPressID   = "3f1c4d6e-4444-4f9d-8c8b-000000000001"
	seedReqCNCID     = "3f1c4d6e-4444-4f9d-8c8b-000000000002"
	seedReqForkPMID  = "3f1c4d6e-4444-4f9d-8c8b-000000000003"
	seedDemoPassword = "gearguard"
)
