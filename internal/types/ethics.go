package types

import (
	"github.com/google/uuid"
)

// CelllineEthics captures the donor-consent questionnaire. The registry
// answers are tri-state: yes, no, or not answered, hence the *bool columns.
type CelllineEthics struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CelllineID uuid.UUID `gorm:"type:uuid;column:cell_line_id;not null;uniqueIndex" json:"cell_line_id"`

	DonorConsent                 *bool `gorm:"column:donor_consent" json:"donor_consent,omitempty"`
	NoPressureStatement          *bool `gorm:"column:no_pressure_statement" json:"no_pressure_statement,omitempty"`
	NoInducementStatement        *bool `gorm:"column:no_inducement_statement" json:"no_inducement_statement,omitempty"`
	DonorConsentForm             *bool `gorm:"column:donor_consent_form" json:"donor_consent_form,omitempty"`
	KnownLocationOfConsentForm   *bool `gorm:"column:known_location_of_consent_form" json:"known_location_of_consent_form,omitempty"`
	CopyOfConsentFormObtainable  *bool `gorm:"column:copy_of_consent_form_obtainable" json:"copy_of_consent_form_obtainable,omitempty"`
	ObtainNewConsentForm         *bool `gorm:"column:obtain_new_consent_form" json:"obtain_new_consent_form,omitempty"`
	DonorRecontactAgreement      *bool `gorm:"column:donor_recontact_agreement" json:"donor_recontact_agreement,omitempty"`
	ConsentAnticipatesDonorNotificationResearchResults *bool `gorm:"column:consent_anticipates_donor_notification_research_results" json:"consent_anticipates_donor_notification_research_results,omitempty"`
	DonorExpectsNotificationHealthImplications         *bool `gorm:"column:donor_expects_notification_health_implications" json:"donor_expects_notification_health_implications,omitempty"`

	ConsentPermitsIpsDerivation           *bool   `gorm:"column:consent_permits_ips_derivation" json:"consent_permits_ips_derivation,omitempty"`
	ConsentPertainsSpecificResearchProject *bool  `gorm:"column:consent_pertains_specific_research_project" json:"consent_pertains_specific_research_project,omitempty"`
	ConsentPermitsFutureResearch          *bool   `gorm:"column:consent_permits_future_research" json:"consent_permits_future_research,omitempty"`
	FutureResearchPermittedSpecifiedAreas *bool   `gorm:"column:future_research_permitted_specified_areas" json:"future_research_permitted_specified_areas,omitempty"`
	FutureResearchPermittedAreas          *string `gorm:"column:future_research_permitted_areas" json:"future_research_permitted_areas,omitempty"`
	ConsentPermitsClinicalTreatment       *bool   `gorm:"column:consent_permits_clinical_treatment" json:"consent_permits_clinical_treatment,omitempty"`
	FormalPermissionForDistribution       *bool   `gorm:"column:formal_permission_for_distribution" json:"formal_permission_for_distribution,omitempty"`
	ConsentPermitsResearchByAcademicInstitution *bool `gorm:"column:consent_permits_research_by_academic_institution" json:"consent_permits_research_by_academic_institution,omitempty"`
	ConsentPermitsResearchByOrg                 *bool `gorm:"column:consent_permits_research_by_org" json:"consent_permits_research_by_org,omitempty"`
	ConsentPermitsResearchByNonProfitCompany    *bool `gorm:"column:consent_permits_research_by_non_profit_company" json:"consent_permits_research_by_non_profit_company,omitempty"`
	ConsentPermitsResearchByForProfitCompany    *bool `gorm:"column:consent_permits_research_by_for_profit_company" json:"consent_permits_research_by_for_profit_company,omitempty"`
	ConsentPermitsDevelopmentOfCommercialProducts *bool `gorm:"column:consent_permits_development_of_commercial_products" json:"consent_permits_development_of_commercial_products,omitempty"`
	ConsentExpresslyPreventsCommercialDevelopment *bool `gorm:"column:consent_expressly_prevents_commercial_development" json:"consent_expressly_prevents_commercial_development,omitempty"`
	ConsentExpresslyPreventsFinancialGain         *bool `gorm:"column:consent_expressly_prevents_financial_gain" json:"consent_expressly_prevents_financial_gain,omitempty"`
	FurtherConstraintsOnUse     *bool   `gorm:"column:further_constraints_on_use" json:"further_constraints_on_use,omitempty"`
	FurtherConstraintsOnUseDesc *string `gorm:"column:further_constraints_on_use_desc" json:"further_constraints_on_use_desc,omitempty"`

	ConsentExpresslyPermitsIndefiniteStorage         *bool `gorm:"column:consent_expressly_permits_indefinite_storage" json:"consent_expressly_permits_indefinite_storage,omitempty"`
	ConsentPreventsAvailabilityToWorldwideResearch   *bool `gorm:"column:consent_prevents_availability_to_worldwide_research" json:"consent_prevents_availability_to_worldwide_research,omitempty"`
	ConsentPermitsGeneticTesting                     *bool `gorm:"column:consent_permits_genetic_testing" json:"consent_permits_genetic_testing,omitempty"`
	ConsentPermitsTestingMicrobiologicalAgents       *bool `gorm:"column:consent_permits_testing_microbiological_agents" json:"consent_permits_testing_microbiological_agents,omitempty"`
	DerivedInformationInfluencePersonalFutureTreatment *bool `gorm:"column:derived_information_influence_personal_future_treatment" json:"derived_information_influence_personal_future_treatment,omitempty"`

	DonorDataProtectionInformed          *bool   `gorm:"column:donor_data_protection_informed" json:"donor_data_protection_informed,omitempty"`
	DonatedMaterialCode                  *bool   `gorm:"column:donated_material_code" json:"donated_material_code,omitempty"`
	DonatedMaterialRenderedUnidentifiable *bool  `gorm:"column:donated_material_rendered_unidentifiable" json:"donated_material_rendered_unidentifiable,omitempty"`
	GeneticInformationExists             *bool   `gorm:"column:genetic_information_exists" json:"genetic_information_exists,omitempty"`
	GeneticInformationAccessPolicy       *string `gorm:"column:genetic_information_access_policy" json:"genetic_information_access_policy,omitempty"`
	GeneticInformationAvailable          *bool   `gorm:"column:genetic_information_available" json:"genetic_information_available,omitempty"`

	ConsentPermitsAccessMedicalRecords       *bool   `gorm:"column:consent_permits_access_medical_records" json:"consent_permits_access_medical_records,omitempty"`
	ConsentPermitsAccessOtherClinicalSource  *bool   `gorm:"column:consent_permits_access_other_clinical_source" json:"consent_permits_access_other_clinical_source,omitempty"`
	MedicalRecordsAccessConsented            *bool   `gorm:"column:medical_records_access_consented" json:"medical_records_access_consented,omitempty"`
	MedicalRecordsAccessConsentedOrgName     *string `gorm:"column:medical_records_access_consented_org_name" json:"medical_records_access_consented_org_name,omitempty"`

	ConsentPermitsStopOfDerivedMaterialUse          *bool `gorm:"column:consent_permits_stop_of_derived_material_use" json:"consent_permits_stop_of_derived_material_use,omitempty"`
	ConsentPermitsStopOfDeliveryOfInformationAndData *bool `gorm:"column:consent_permits_stop_of_delivery_of_information_and_data" json:"consent_permits_stop_of_delivery_of_information_and_data,omitempty"`

	AuthorityApproval     *bool   `gorm:"column:authority_approval" json:"authority_approval,omitempty"`
	ApprovalAuthorityName *string `gorm:"column:approval_authority_name" json:"approval_authority_name,omitempty"`
	ApprovalNumber        *string `gorm:"column:approval_number" json:"approval_number,omitempty"`
	EthicsReviewPanelOpinionRelationConsentForm *bool `gorm:"column:ethics_review_panel_opinion_relation_consent_form" json:"ethics_review_panel_opinion_relation_consent_form,omitempty"`
	EthicsReviewPanelOpinionProjectProposedUse  *bool `gorm:"column:ethics_review_panel_opinion_project_proposed_use" json:"ethics_review_panel_opinion_project_proposed_use,omitempty"`

	RecombinedDnaVectorsSupplier    *string `gorm:"column:recombined_dna_vectors_supplier" json:"recombined_dna_vectors_supplier,omitempty"`
	UseOrDistributionConstraints    *bool   `gorm:"column:use_or_distribution_constraints" json:"use_or_distribution_constraints,omitempty"`
	UseOrDistributionConstraintsDesc *string `gorm:"column:use_or_distribution_constraints_desc" json:"use_or_distribution_constraints_desc,omitempty"`
	ThirdPartyObligations           *bool   `gorm:"column:third_party_obligations" json:"third_party_obligations,omitempty"`
	ThirdPartyObligationsDesc       *string `gorm:"column:third_party_obligations_desc" json:"third_party_obligations_desc,omitempty"`
}

func (CelllineEthics) TableName() string { return "cellline_ethics" }
