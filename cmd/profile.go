package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/finlearn/finlearn/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or edit the business profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored business profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		raw, err := st.ProfileRepo().Raw(cmd.Context())
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		if raw == nil {
			fmt.Println("No profile yet. Set one with: finlearn profile set <field> <value>")
			return nil
		}

		printField("Business structure", raw.BusinessStructure)
		printField("Industry", raw.Industry)
		printField("Experience", raw.ExperienceLevel)
		printField("Pain point", raw.PainPoint)
		printField("Learning goal", raw.LearningGoal)
		printField("Time commitment", raw.TimeCommitment)
		printField("Annual turnover", raw.AnnualTurnover)
		printField("VAT registered", strconv.FormatBool(raw.VATRegistered))
		printField("MTD status", raw.MTDStatus)
		printField("Accounting year end", raw.AccountingYearEnd)
		if raw.NextVATReturnDue != nil {
			printField("Next VAT return due", raw.NextVATReturnDue.Format("2006-01-02"))
		}
		if raw.TurnoverLastUpdated != nil {
			printField("Turnover last updated", raw.TurnoverLastUpdated.Format("2006-01-02"))
		}
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Set one profile field",
	Long: `Set one profile field. Fields:

  structure    sole_trader | partnership | limited_company
  industry     free text, e.g. "construction"
  experience   beginner | intermediate | advanced
  pain-point   free text, e.g. "VAT returns"
  goal         free text, e.g. "stay on top of deadlines"
  time         5_minutes | 15_minutes | 30_minutes | 60_minutes
  turnover     amount or range, e.g. "72000" or "60k-85k"
  vat          true | false
  mtd          exempt | should_register | registered
  year-end     "5 April" | "31 March" | "31 December" | ISO date
  vat-due      next VAT return date, ISO (2026-02-07) — or "none"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		field := strings.ToLower(args[0])
		value := args[1]

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		repo := st.ProfileRepo()

		raw, err := repo.Raw(ctx)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		if raw == nil {
			raw = &store.ProfileData{}
		}

		switch field {
		case "structure":
			raw.BusinessStructure = value
		case "industry":
			raw.Industry = value
		case "experience":
			raw.ExperienceLevel = value
		case "pain-point":
			raw.PainPoint = value
		case "goal":
			raw.LearningGoal = value
		case "time":
			raw.TimeCommitment = value
		case "turnover":
			raw.AnnualTurnover = value
		case "vat":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("vat wants true or false, got %q", value)
			}
			raw.VATRegistered = b
		case "mtd":
			raw.MTDStatus = value
		case "year-end":
			raw.AccountingYearEnd = value
		case "vat-due":
			if value == "none" {
				raw.NextVATReturnDue = nil
				break
			}
			t, err := time.Parse("2006-01-02", value)
			if err != nil {
				return fmt.Errorf("vat-due wants an ISO date like 2026-02-07, got %q", value)
			}
			raw.NextVATReturnDue = &t
		default:
			return fmt.Errorf("unknown field %q (see: finlearn profile set --help)", field)
		}

		if err := repo.Save(ctx, *raw); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
		fmt.Printf("Saved %s.\n", field)
		return nil
	},
}

func printField(label, value string) {
	if value == "" {
		value = "—"
	}
	fmt.Printf("%-22s %s\n", label+":", value)
}

func init() {
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
}
