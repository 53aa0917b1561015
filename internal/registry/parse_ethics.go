package registry

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stemlab/biobank-backend/internal/repos"
	"github.com/stemlab/biobank-backend/internal/types"
)

// parseEthics maps the donor-consent questionnaire onto the ethics record.
// Every flag is tri-state; unanswered questions stay NULL.
func (imp *Importer) parseEthics(ctx context.Context, tx *gorm.DB, v Values, line *types.Cellline) (bool, error) {
	_, created, changed, err := repos.UpdateOrCreate(ctx, tx, map[string]interface{}{
		"cell_line_id": line.ID,
	}, func() *types.CelllineEthics {
		return &types.CelllineEthics{ID: uuid.New(), CelllineID: line.ID}
	}, func(e *types.CelllineEthics) {
		e.DonorConsent = v.NullBool("hips_consent_obtained_from_donor_of_tissue_flag")
		e.NoPressureStatement = v.NullBool("hips_no_pressure_stat_flag")
		e.NoInducementStatement = v.NullBool("hips_no_inducement_stat_flag")
		e.DonorConsentForm = v.NullBool("hips_informed_consent_flag")
		e.KnownLocationOfConsentForm = v.NullBool("hips_holding_original_donor_consent_flag")
		e.CopyOfConsentFormObtainable = v.NullBool("hips_holding_original_donor_consent_copy_of_existing_flag")
		e.ObtainNewConsentForm = v.NullBool("hips_arrange_obtain_new_consent_form_flag")
		e.DonorRecontactAgreement = v.NullBool("hips_donor_recontact_agreement_flag")
		e.ConsentAnticipatesDonorNotificationResearchResults = v.NullBool("hips_consent_anticipates_donor_notification_research_results_flag")
		e.DonorExpectsNotificationHealthImplications = v.NullBool("hips_donor_expects_notification_health_implications_flag")

		e.ConsentPermitsIpsDerivation = v.NullBool("hips_consent_permits_ips_derivation_flag")
		e.ConsentPertainsSpecificResearchProject = v.NullBool("hips_consent_pertains_specific_research_project_flag")
		e.ConsentPermitsFutureResearch = v.NullBool("hips_consent_permits_future_research_flag")
		e.FutureResearchPermittedSpecifiedAreas = v.NullBool("hips_future_research_permitted_specified_areas_flag")
		e.FutureResearchPermittedAreas = v.String("hips_future_research_permitted_areas")
		e.ConsentPermitsClinicalTreatment = v.NullBool("hips_consent_permits_clinical_treatment_flag")
		e.FormalPermissionForDistribution = v.NullBool("hips_formal_permission_for_distribution_flag")
		e.ConsentPermitsResearchByAcademicInstitution = v.NullBool("hips_consent_permits_research_by_academic_institution_flag")
		e.ConsentPermitsResearchByOrg = v.NullBool("hips_consent_permits_research_by_org_flag")
		e.ConsentPermitsResearchByNonProfitCompany = v.NullBool("hips_consent_permits_research_by_non_profit_company_flag")
		e.ConsentPermitsResearchByForProfitCompany = v.NullBool("hips_consent_permits_research_by_for_profit_company_flag")
		e.ConsentPermitsDevelopmentOfCommercialProducts = v.NullBool("hips_consent_permits_development_of_commercial_products_flag")
		e.ConsentExpresslyPreventsCommercialDevelopment = v.NullBool("hips_consent_expressly_prevents_commercial_development_flag")
		e.ConsentExpresslyPreventsFinancialGain = v.NullBool("hips_consent_expressly_prevents_financial_gain_flag")
		e.FurtherConstraintsOnUse = v.NullBool("hips_further_constraints_on_use_flag")
		e.FurtherConstraintsOnUseDesc = v.String("hips_further_constraints_on_use")

		e.ConsentExpresslyPermitsIndefiniteStorage = v.NullBool("hips_consent_expressly_permits_indefinite_storage_flag")
		e.ConsentPreventsAvailabilityToWorldwideResearch = v.NullBool("hips_consent_prevents_availiability_to_worldwide_research_flag")
		e.ConsentPermitsGeneticTesting = v.NullBool("hips_consent_permits_genetic_testing_flag")
		e.ConsentPermitsTestingMicrobiologicalAgents = v.NullBool("hips_consent_permits_testing_microbiological_agents_pathogens_flag")
		e.DerivedInformationInfluencePersonalFutureTreatment = v.NullBool("hips_derived_information_influence_personal_future_treatment_flag")

		e.DonorDataProtectionInformed = v.NullBool("hips_donor_data_protection_informed_flag")
		e.DonatedMaterialCode = v.NullBool("hips_donated_material_code_flag")
		e.DonatedMaterialRenderedUnidentifiable = v.NullBool("hips_donated_material_rendered_unidentifiable_flag")
		e.GeneticInformationExists = v.NullBool("genetic_information_associated_flag")
		e.GeneticInformationAccessPolicy = v.String("hips_genetic_information_access_policy")
		e.GeneticInformationAvailable = v.NullBool("genetic_information_available_flag")

		e.ConsentPermitsAccessMedicalRecords = v.NullBool("hips_consent_permits_access_medical_records_flag")
		e.ConsentPermitsAccessOtherClinicalSource = v.NullBool("hips_consent_permits_access_other_clinical_source_flag")
		e.MedicalRecordsAccessConsented = v.NullBool("hips_medical_records_access_consented_flag")
		e.MedicalRecordsAccessConsentedOrgName = v.String("hips_medical_records_access_consented_organisation_name")

		e.ConsentPermitsStopOfDerivedMaterialUse = v.NullBool("hips_consent_permits_stop_of_derived_material_use_flag")
		e.ConsentPermitsStopOfDeliveryOfInformationAndData = v.NullBool("hips_consent_permits_delivery_of_information_and_data_flag")

		e.AuthorityApproval = v.NullBool("hips_approval_flag")
		e.ApprovalAuthorityName = v.String("hips_approval_auth_name")
		e.ApprovalNumber = v.String("hips_approval_number")
		e.EthicsReviewPanelOpinionRelationConsentForm = v.NullBool("hips_ethics_review_panel_opinion_relation_consent_form_flag")
		e.EthicsReviewPanelOpinionProjectProposedUse = v.NullBool("hips_ethics_review_panel_opinion_project_proposed_use_flag")

		e.RecombinedDnaVectorsSupplier = v.String("hips_recombined_dna_vectors_supplier")
		e.UseOrDistributionConstraints = v.NullBool("hips_use_or_distribution_constraints_flag")
		e.UseOrDistributionConstraintsDesc = v.String("hips_use_or_distribution_constraints")
		e.ThirdPartyObligations = v.NullBool("hips_third_party_obligations_flag")
		e.ThirdPartyObligationsDesc = v.String("hips_third_party_obligations")
	})
	if err != nil {
		return false, err
	}

	return created || changed, nil
}
