package modem

import (
	"fmt"
	"slices"
	"strings"
)

type enumValue interface {
	~int32 | ~uint32
}

const anyMask = 0xFFFFFFFF

func enumString[T enumValue](v T, names map[T]string) string {
	if name, ok := names[v]; ok {
		return name
	}
	return fmt.Sprintf("%T(%d)", v, v)
}

// flags decomposes v into the single-bit members of names, in ascending order.
// The zero member and the all-bits sentinel are never part of the result.
func flags[T ~uint32](v T, names map[T]string) []T {
	var members []T
	for member := range names {
		if member == 0 || uint32(member) == anyMask {
			continue
		}
		if v&member == member {
			members = append(members, member)
		}
	}
	slices.Sort(members)
	return members
}

func flagString[T ~uint32](v T, names map[T]string) string {
	if name, ok := names[v]; ok {
		return name
	}
	members := flags(v, names)
	parts := make([]string, 0, len(members)+1)
	var known T
	for _, member := range members {
		parts = append(parts, names[member])
		known |= member
	}
	if rest := v &^ known; rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

var bearerAllowedAuthNames = map[BearerAllowedAuth]string{
	BearerAllowedAuthUnknown:  "MM_BEARER_ALLOWED_AUTH_UNKNOWN",
	BearerAllowedAuthNone:     "MM_BEARER_ALLOWED_AUTH_NONE",
	BearerAllowedAuthPap:      "MM_BEARER_ALLOWED_AUTH_PAP",
	BearerAllowedAuthChap:     "MM_BEARER_ALLOWED_AUTH_CHAP",
	BearerAllowedAuthMschap:   "MM_BEARER_ALLOWED_AUTH_MSCHAP",
	BearerAllowedAuthMschapv2: "MM_BEARER_ALLOWED_AUTH_MSCHAPV2",
	BearerAllowedAuthEap:      "MM_BEARER_ALLOWED_AUTH_EAP",
}

func (a BearerAllowedAuth) Has(f BearerAllowedAuth) bool { return f != 0 && a&f == f }
func (a BearerAllowedAuth) Flags() []BearerAllowedAuth  { return flags(a, bearerAllowedAuthNames) }
func (a BearerAllowedAuth) String() string              { return flagString(a, bearerAllowedAuthNames) }

var bearerAccessTypePreferenceNames = map[BearerAccessTypePreference]string{
	BearerAccessTypePreferenceNone:          "MM_BEARER_ACCESS_TYPE_PREFERENCE_NONE",
	BearerAccessTypePreference3gppOnly:      "MM_BEARER_ACCESS_TYPE_PREFERENCE_3GPP_ONLY",
	BearerAccessTypePreference3gppPreferred: "MM_BEARER_ACCESS_TYPE_PREFERENCE_3GPP_PREFERRED",
	BearerAccessTypePreferenceNon3gppOnly:   "MM_BEARER_ACCESS_TYPE_PREFERENCE_NON_3GPP_ONLY",
}

func (p BearerAccessTypePreference) String() string {
	return enumString(p, bearerAccessTypePreferenceNames)
}

var bearerApnTypeNames = map[BearerApnType]string{
	BearerApnTypeNone:       "MM_BEARER_APN_TYPE_NONE",
	BearerApnTypeInitial:    "MM_BEARER_APN_TYPE_INITIAL",
	BearerApnTypeDefault:    "MM_BEARER_APN_TYPE_DEFAULT",
	BearerApnTypeIms:        "MM_BEARER_APN_TYPE_IMS",
	BearerApnTypeMms:        "MM_BEARER_APN_TYPE_MMS",
	BearerApnTypeManagement: "MM_BEARER_APN_TYPE_MANAGEMENT",
	BearerApnTypeVoice:      "MM_BEARER_APN_TYPE_VOICE",
	BearerApnTypeEmergency:  "MM_BEARER_APN_TYPE_EMERGENCY",
	BearerApnTypePrivate:    "MM_BEARER_APN_TYPE_PRIVATE",
	BearerApnTypePurchase:   "MM_BEARER_APN_TYPE_PURCHASE",
	BearerApnTypeVideoShare: "MM_BEARER_APN_TYPE_VIDEO_SHARE",
	BearerApnTypeLocal:      "MM_BEARER_APN_TYPE_LOCAL",
	BearerApnTypeApp:        "MM_BEARER_APN_TYPE_APP",
	BearerApnTypeXcap:       "MM_BEARER_APN_TYPE_XCAP",
	BearerApnTypeTethering:  "MM_BEARER_APN_TYPE_TETHERING",
}

func (t BearerApnType) Has(f BearerApnType) bool { return f != 0 && t&f == f }
func (t BearerApnType) Flags() []BearerApnType  { return flags(t, bearerApnTypeNames) }
func (t BearerApnType) String() string          { return flagString(t, bearerApnTypeNames) }

var bearerIPFamilyNames = map[BearerIPFamily]string{
	BearerIPFamilyNone:   "MM_BEARER_IP_FAMILY_NONE",
	BearerIPFamilyIPv4:   "MM_BEARER_IP_FAMILY_IPV4",
	BearerIPFamilyIPv6:   "MM_BEARER_IP_FAMILY_IPV6",
	BearerIPFamilyIPv4v6: "MM_BEARER_IP_FAMILY_IPV4V6",
	BearerIPFamilyAny:    "MM_BEARER_IP_FAMILY_ANY",
}

func (f BearerIPFamily) Has(family BearerIPFamily) bool { return family != 0 && f&family == family }
func (f BearerIPFamily) Flags() []BearerIPFamily        { return flags(f, bearerIPFamilyNames) }
func (f BearerIPFamily) String() string                 { return flagString(f, bearerIPFamilyNames) }

var bearerIPMethodNames = map[BearerIPMethod]string{
	BearerIPMethodUnknown: "MM_BEARER_IP_METHOD_UNKNOWN",
	BearerIPMethodPPP:     "MM_BEARER_IP_METHOD_PPP",
	BearerIPMethodStatic:  "MM_BEARER_IP_METHOD_STATIC",
	BearerIPMethodDHCP:    "MM_BEARER_IP_METHOD_DHCP",
}

func (m BearerIPMethod) String() string { return enumString(m, bearerIPMethodNames) }

var bearerMultiplexSupportNames = map[BearerMultiplexSupport]string{
	BearerMultiplexSupportUnknown:   "MM_BEARER_MULTIPLEX_SUPPORT_UNKNOWN",
	BearerMultiplexSupportNone:      "MM_BEARER_MULTIPLEX_SUPPORT_NONE",
	BearerMultiplexSupportRequested: "MM_BEARER_MULTIPLEX_SUPPORT_REQUESTED",
	BearerMultiplexSupportRequired:  "MM_BEARER_MULTIPLEX_SUPPORT_REQUIRED",
}

func (s BearerMultiplexSupport) String() string { return enumString(s, bearerMultiplexSupportNames) }

var bearerProfileSourceNames = map[BearerProfileSource]string{
	BearerProfileSourceUnknown:  "MM_BEARER_PROFILE_SOURCE_UNKNOWN",
	BearerProfileSourceAdmin:    "MM_BEARER_PROFILE_SOURCE_ADMIN",
	BearerProfileSourceUser:     "MM_BEARER_PROFILE_SOURCE_USER",
	BearerProfileSourceOperator: "MM_BEARER_PROFILE_SOURCE_OPERATOR",
	BearerProfileSourceModem:    "MM_BEARER_PROFILE_SOURCE_MODEM",
	BearerProfileSourceDevice:   "MM_BEARER_PROFILE_SOURCE_DEVICE",
}

func (s BearerProfileSource) String() string { return enumString(s, bearerProfileSourceNames) }

var bearerRoamingAllowanceNames = map[BearerRoamingAllowance]string{
	BearerRoamingAllowanceNone:       "MM_BEARER_ROAMING_ALLOWANCE_NONE",
	BearerRoamingAllowanceHome:       "MM_BEARER_ROAMING_ALLOWANCE_HOME",
	BearerRoamingAllowancePartner:    "MM_BEARER_ROAMING_ALLOWANCE_PARTNER",
	BearerRoamingAllowanceNonPartner: "MM_BEARER_ROAMING_ALLOWANCE_NON_PARTNER",
}

func (a BearerRoamingAllowance) Has(f BearerRoamingAllowance) bool { return f != 0 && a&f == f }
func (a BearerRoamingAllowance) Flags() []BearerRoamingAllowance  { return flags(a, bearerRoamingAllowanceNames) }
func (a BearerRoamingAllowance) String() string                   { return flagString(a, bearerRoamingAllowanceNames) }

var bearerTypeNames = map[BearerType]string{
	BearerTypeUnknown:       "MM_BEARER_TYPE_UNKNOWN",
	BearerTypeDefault:       "MM_BEARER_TYPE_DEFAULT",
	BearerTypeDefaultAttach: "MM_BEARER_TYPE_DEFAULT_ATTACH",
	BearerTypeDedicated:     "MM_BEARER_TYPE_DEDICATED",
}

func (t BearerType) String() string { return enumString(t, bearerTypeNames) }

var modemAccessTechnologyNames = map[ModemAccessTechnology]string{
	ModemAccessTechnologyUnknown:    "MM_MODEM_ACCESS_TECHNOLOGY_UNKNOWN",
	ModemAccessTechnologyPots:       "MM_MODEM_ACCESS_TECHNOLOGY_POTS",
	ModemAccessTechnologyGsm:        "MM_MODEM_ACCESS_TECHNOLOGY_GSM",
	ModemAccessTechnologyGsmCompact: "MM_MODEM_ACCESS_TECHNOLOGY_GSM_COMPACT",
	ModemAccessTechnologyGprs:       "MM_MODEM_ACCESS_TECHNOLOGY_GPRS",
	ModemAccessTechnologyEdge:       "MM_MODEM_ACCESS_TECHNOLOGY_EDGE",
	ModemAccessTechnologyUmts:       "MM_MODEM_ACCESS_TECHNOLOGY_UMTS",
	ModemAccessTechnologyHsdpa:      "MM_MODEM_ACCESS_TECHNOLOGY_HSDPA",
	ModemAccessTechnologyHsupa:      "MM_MODEM_ACCESS_TECHNOLOGY_HSUPA",
	ModemAccessTechnologyHspa:       "MM_MODEM_ACCESS_TECHNOLOGY_HSPA",
	ModemAccessTechnologyHspaPlus:   "MM_MODEM_ACCESS_TECHNOLOGY_HSPA_PLUS",
	ModemAccessTechnology1xrtt:      "MM_MODEM_ACCESS_TECHNOLOGY_1XRTT",
	ModemAccessTechnologyEvdo0:      "MM_MODEM_ACCESS_TECHNOLOGY_EVDO0",
	ModemAccessTechnologyEvdoa:      "MM_MODEM_ACCESS_TECHNOLOGY_EVDOA",
	ModemAccessTechnologyEvdob:      "MM_MODEM_ACCESS_TECHNOLOGY_EVDOB",
	ModemAccessTechnologyLte:        "MM_MODEM_ACCESS_TECHNOLOGY_LTE",
	ModemAccessTechnologyAny:        "MM_MODEM_ACCESS_TECHNOLOGY_ANY",
}

func (t ModemAccessTechnology) Has(f ModemAccessTechnology) bool { return f != 0 && t&f == f }
func (t ModemAccessTechnology) Flags() []ModemAccessTechnology  { return flags(t, modemAccessTechnologyNames) }
func (t ModemAccessTechnology) String() string                  { return flagString(t, modemAccessTechnologyNames) }

var modemBandNames = map[ModemBand]string{
	ModemBandUnknown:              "MM_MODEM_BAND_UNKNOWN",
	ModemBandEgsm:                 "MM_MODEM_BAND_EGSM",
	ModemBandDcs:                  "MM_MODEM_BAND_DCS",
	ModemBandPcs:                  "MM_MODEM_BAND_PCS",
	ModemBandG850:                 "MM_MODEM_BAND_G850",
	ModemBandU2100:                "MM_MODEM_BAND_U2100",
	ModemBandU1800:                "MM_MODEM_BAND_U1800",
	ModemBandU17iv:                "MM_MODEM_BAND_U17IV",
	ModemBandU800:                 "MM_MODEM_BAND_U800",
	ModemBandU850:                 "MM_MODEM_BAND_U850",
	ModemBandU900:                 "MM_MODEM_BAND_U900",
	ModemBandU17ix:                "MM_MODEM_BAND_U17IX",
	ModemBandU1900:                "MM_MODEM_BAND_U1900",
	ModemBandU2600:                "MM_MODEM_BAND_U2600",
	ModemBandEutranI:              "MM_MODEM_BAND_EUTRAN_I",
	ModemBandEutranII:             "MM_MODEM_BAND_EUTRAN_II",
	ModemBandEutranIII:            "MM_MODEM_BAND_EUTRAN_III",
	ModemBandEutranIV:             "MM_MODEM_BAND_EUTRAN_IV",
	ModemBandEutranV:              "MM_MODEM_BAND_EUTRAN_V",
	ModemBandEutranVI:             "MM_MODEM_BAND_EUTRAN_VI",
	ModemBandEutranVII:            "MM_MODEM_BAND_EUTRAN_VII",
	ModemBandEutranVIII:           "MM_MODEM_BAND_EUTRAN_VIII",
	ModemBandEutranIX:             "MM_MODEM_BAND_EUTRAN_IX",
	ModemBandEutranX:              "MM_MODEM_BAND_EUTRAN_X",
	ModemBandEutranXI:             "MM_MODEM_BAND_EUTRAN_XI",
	ModemBandEutranXII:            "MM_MODEM_BAND_EUTRAN_XII",
	ModemBandEutranXIII:           "MM_MODEM_BAND_EUTRAN_XIII",
	ModemBandEutranXIV:            "MM_MODEM_BAND_EUTRAN_XIV",
	ModemBandEutranXVII:           "MM_MODEM_BAND_EUTRAN_XVII",
	ModemBandEutranXVIII:          "MM_MODEM_BAND_EUTRAN_XVIII",
	ModemBandEutranXIX:            "MM_MODEM_BAND_EUTRAN_XIX",
	ModemBandEutranXX:             "MM_MODEM_BAND_EUTRAN_XX",
	ModemBandEutranXXI:            "MM_MODEM_BAND_EUTRAN_XXI",
	ModemBandEutranXXII:           "MM_MODEM_BAND_EUTRAN_XXII",
	ModemBandEutranXXIII:          "MM_MODEM_BAND_EUTRAN_XXIII",
	ModemBandEutranXXIV:           "MM_MODEM_BAND_EUTRAN_XXIV",
	ModemBandEutranXXV:            "MM_MODEM_BAND_EUTRAN_XXV",
	ModemBandEutranXXVI:           "MM_MODEM_BAND_EUTRAN_XXVI",
	ModemBandEutranXXXIII:         "MM_MODEM_BAND_EUTRAN_XXXIII",
	ModemBandEutranXXXIV:          "MM_MODEM_BAND_EUTRAN_XXXIV",
	ModemBandEutranXXXV:           "MM_MODEM_BAND_EUTRAN_XXXV",
	ModemBandEutranXXXVI:          "MM_MODEM_BAND_EUTRAN_XXXVI",
	ModemBandEutranXXXVII:         "MM_MODEM_BAND_EUTRAN_XXXVII",
	ModemBandEutranXXXVIII:        "MM_MODEM_BAND_EUTRAN_XXXVIII",
	ModemBandEutranXXXIX:          "MM_MODEM_BAND_EUTRAN_XXXIX",
	ModemBandEutranXL:             "MM_MODEM_BAND_EUTRAN_XL",
	ModemBandEutranXLI:            "MM_MODEM_BAND_EUTRAN_XLI",
	ModemBandEutranXLII:           "MM_MODEM_BAND_EUTRAN_XLII",
	ModemBandEutranXLIII:          "MM_MODEM_BAND_EUTRAN_XLIII",
	ModemBandCdmaBc0Cellular800:   "MM_MODEM_BAND_CDMA_BC0_CELLULAR_800",
	ModemBandCdmaBc1Pcs1900:       "MM_MODEM_BAND_CDMA_BC1_PCS_1900",
	ModemBandCdmaBc2Tacs:          "MM_MODEM_BAND_CDMA_BC2_TACS",
	ModemBandCdmaBc3Jtacs:         "MM_MODEM_BAND_CDMA_BC3_JTACS",
	ModemBandCdmaBc4KoreanPcs:     "MM_MODEM_BAND_CDMA_BC4_KOREAN_PCS",
	ModemBandCdmaBc5Nmt450:        "MM_MODEM_BAND_CDMA_BC5_NMT450",
	ModemBandCdmaBc6Imt2000:       "MM_MODEM_BAND_CDMA_BC6_IMT2000",
	ModemBandCdmaBc7Cellular700:   "MM_MODEM_BAND_CDMA_BC7_CELLULAR_700",
	ModemBandCdmaBc81800:          "MM_MODEM_BAND_CDMA_BC8_1800",
	ModemBandCdmaBc9900:           "MM_MODEM_BAND_CDMA_BC9_900",
	ModemBandCdmaBc10Secondary800: "MM_MODEM_BAND_CDMA_BC10_SECONDARY_800",
	ModemBandCdmaBc11Pamr400:      "MM_MODEM_BAND_CDMA_BC11_PAMR_400",
	ModemBandCdmaBc12Pamr800:      "MM_MODEM_BAND_CDMA_BC12_PAMR_800",
	ModemBandCdmaBc13Imt20002500:  "MM_MODEM_BAND_CDMA_BC13_IMT2000_2500",
	ModemBandCdmaBc14Pcs21900:     "MM_MODEM_BAND_CDMA_BC14_PCS2_1900",
	ModemBandCdmaBc15Aws:          "MM_MODEM_BAND_CDMA_BC15_AWS",
	ModemBandCdmaBc16Us2500:       "MM_MODEM_BAND_CDMA_BC16_US_2500",
	ModemBandCdmaBc17UsFlo2500:    "MM_MODEM_BAND_CDMA_BC17_US_FLO_2500",
	ModemBandCdmaBc18UsPs700:      "MM_MODEM_BAND_CDMA_BC18_US_PS_700",
	ModemBandCdmaBc19UsLower700:   "MM_MODEM_BAND_CDMA_BC19_US_LOWER_700",
	ModemBandAny:                  "MM_MODEM_BAND_ANY",
}

func (b ModemBand) String() string { return enumString(b, modemBandNames) }

var modemCapabilityNames = map[ModemCapability]string{
	ModemCapabilityNone:        "MM_MODEM_CAPABILITY_NONE",
	ModemCapabilityPots:        "MM_MODEM_CAPABILITY_POTS",
	ModemCapabilityCdmaEvdo:    "MM_MODEM_CAPABILITY_CDMA_EVDO",
	ModemCapabilityGsmUmts:     "MM_MODEM_CAPABILITY_GSM_UMTS",
	ModemCapabilityLte:         "MM_MODEM_CAPABILITY_LTE",
	ModemCapabilityLteAdvanced: "MM_MODEM_CAPABILITY_LTE_ADVANCED",
	ModemCapabilityIridium:     "MM_MODEM_CAPABILITY_IRIDIUM",
	ModemCapabilityAny:         "MM_MODEM_CAPABILITY_ANY",
}

func (c ModemCapability) Has(f ModemCapability) bool { return f != 0 && c&f == f }
func (c ModemCapability) Flags() []ModemCapability  { return flags(c, modemCapabilityNames) }
func (c ModemCapability) String() string            { return flagString(c, modemCapabilityNames) }

var modemCdmaRmProtocolNames = map[ModemCdmaRmProtocol]string{
	ModemCdmaRmProtocolUnknown:           "MM_MODEM_CDMA_RM_PROTOCOL_UNKNOWN",
	ModemCdmaRmProtocolAsync:             "MM_MODEM_CDMA_RM_PROTOCOL_ASYNC",
	ModemCdmaRmProtocolPacketRelay:       "MM_MODEM_CDMA_RM_PROTOCOL_PACKET_RELAY",
	ModemCdmaRmProtocolPacketNetworkPPP:  "MM_MODEM_CDMA_RM_PROTOCOL_PACKET_NETWORK_PPP",
	ModemCdmaRmProtocolPacketNetworkSLIP: "MM_MODEM_CDMA_RM_PROTOCOL_PACKET_NETWORK_SLIP",
	ModemCdmaRmProtocolStuIII:            "MM_MODEM_CDMA_RM_PROTOCOL_STU_III",
}

func (p ModemCdmaRmProtocol) String() string { return enumString(p, modemCdmaRmProtocolNames) }

var modemLockNames = map[ModemLock]string{
	ModemLockUnknown:     "MM_MODEM_LOCK_UNKNOWN",
	ModemLockNone:        "MM_MODEM_LOCK_NONE",
	ModemLockSimPin:      "MM_MODEM_LOCK_SIM_PIN",
	ModemLockSimPin2:     "MM_MODEM_LOCK_SIM_PIN2",
	ModemLockSimPuk:      "MM_MODEM_LOCK_SIM_PUK",
	ModemLockSimPuk2:     "MM_MODEM_LOCK_SIM_PUK2",
	ModemLockPhSpPin:     "MM_MODEM_LOCK_PH_SP_PIN",
	ModemLockPhSpPuk:     "MM_MODEM_LOCK_PH_SP_PUK",
	ModemLockPhNetPin:    "MM_MODEM_LOCK_PH_NET_PIN",
	ModemLockPhNetPuk:    "MM_MODEM_LOCK_PH_NET_PUK",
	ModemLockPhSimPin:    "MM_MODEM_LOCK_PH_SIM_PIN",
	ModemLockPhCorpPin:   "MM_MODEM_LOCK_PH_CORP_PIN",
	ModemLockPhCorpPuk:   "MM_MODEM_LOCK_PH_CORP_PUK",
	ModemLockPhFsimPin:   "MM_MODEM_LOCK_PH_FSIM_PIN",
	ModemLockPhFsimPuk:   "MM_MODEM_LOCK_PH_FSIM_PUK",
	ModemLockPhNetsubPin: "MM_MODEM_LOCK_PH_NETSUB_PIN",
	ModemLockPhNetsubPuk: "MM_MODEM_LOCK_PH_NETSUB_PUK",
}

func (l ModemLock) String() string { return enumString(l, modemLockNames) }

var modemModeNames = map[ModemMode]string{
	ModemModeNone: "MM_MODEM_MODE_NONE",
	ModemModeCs:   "MM_MODEM_MODE_CS",
	ModemMode2g:   "MM_MODEM_MODE_2G",
	ModemMode3g:   "MM_MODEM_MODE_3G",
	ModemMode4g:   "MM_MODEM_MODE_4G",
	ModemMode5g:   "MM_MODEM_MODE_5G",
	ModemModeAny:  "MM_MODEM_MODE_ANY",
}

func (m ModemMode) Has(f ModemMode) bool { return f != 0 && m&f == f }
func (m ModemMode) Flags() []ModemMode  { return flags(m, modemModeNames) }
func (m ModemMode) String() string      { return flagString(m, modemModeNames) }

var modemPortTypeNames = map[ModemPortType]string{
	ModemPortTypeUnknown: "MM_MODEM_PORT_TYPE_UNKNOWN",
	ModemPortTypeNet:     "MM_MODEM_PORT_TYPE_NET",
	ModemPortTypeAt:      "MM_MODEM_PORT_TYPE_AT",
	ModemPortTypeQcdm:    "MM_MODEM_PORT_TYPE_QCDM",
	ModemPortTypeGps:     "MM_MODEM_PORT_TYPE_GPS",
	ModemPortTypeQmi:     "MM_MODEM_PORT_TYPE_QMI",
	ModemPortTypeMbim:    "MM_MODEM_PORT_TYPE_MBIM",
	ModemPortTypeAudio:   "MM_MODEM_PORT_TYPE_AUDIO",
}

func (t ModemPortType) String() string { return enumString(t, modemPortTypeNames) }

var modemPowerStateNames = map[ModemPowerState]string{
	ModemPowerStateUnknown: "MM_MODEM_POWER_STATE_UNKNOWN",
	ModemPowerStateOff:     "MM_MODEM_POWER_STATE_OFF",
	ModemPowerStateLow:     "MM_MODEM_POWER_STATE_LOW",
	ModemPowerStateOn:      "MM_MODEM_POWER_STATE_ON",
}

func (s ModemPowerState) String() string { return enumString(s, modemPowerStateNames) }

var modemStateNames = map[ModemState]string{
	ModemStateFailed:        "MM_MODEM_STATE_FAILED",
	ModemStateUnknown:       "MM_MODEM_STATE_UNKNOWN",
	ModemStateInitializing:  "MM_MODEM_STATE_INITIALIZING",
	ModemStateLocked:        "MM_MODEM_STATE_LOCKED",
	ModemStateDisabled:      "MM_MODEM_STATE_DISABLED",
	ModemStateDisabling:     "MM_MODEM_STATE_DISABLING",
	ModemStateEnabling:      "MM_MODEM_STATE_ENABLING",
	ModemStateEnabled:       "MM_MODEM_STATE_ENABLED",
	ModemStateSearching:     "MM_MODEM_STATE_SEARCHING",
	ModemStateRegistered:    "MM_MODEM_STATE_REGISTERED",
	ModemStateDisconnecting: "MM_MODEM_STATE_DISCONNECTING",
	ModemStateConnecting:    "MM_MODEM_STATE_CONNECTING",
	ModemStateConnected:     "MM_MODEM_STATE_CONNECTED",
}

func (s ModemState) String() string { return enumString(s, modemStateNames) }

var modemStateChangeReasonNames = map[ModemStateChangeReason]string{
	ModemStateChangeReasonUnknown:       "MM_MODEM_STATE_CHANGE_REASON_UNKNOWN",
	ModemStateChangeReasonUserRequested: "MM_MODEM_STATE_CHANGE_REASON_USER_REQUESTED",
	ModemStateChangeReasonSuspend:       "MM_MODEM_STATE_CHANGE_REASON_SUSPEND",
	ModemStateChangeReasonFailure:       "MM_MODEM_STATE_CHANGE_REASON_FAILURE",
}

func (r ModemStateChangeReason) String() string { return enumString(r, modemStateChangeReasonNames) }

var modemStateFailedReasonNames = map[ModemStateFailedReason]string{
	ModemStateFailedReasonNone:       "MM_MODEM_STATE_FAILED_REASON_NONE",
	ModemStateFailedReasonUnknown:    "MM_MODEM_STATE_FAILED_REASON_UNKNOWN",
	ModemStateFailedReasonSimMissing: "MM_MODEM_STATE_FAILED_REASON_SIM_MISSING",
	ModemStateFailedReasonSimError:   "MM_MODEM_STATE_FAILED_REASON_SIM_ERROR",
}

func (r ModemStateFailedReason) String() string { return enumString(r, modemStateFailedReasonNames) }

var modem3gppFacilityNames = map[Modem3gppFacility]string{
	Modem3gppFacilityNone:         "MM_MODEM_3GPP_FACILITY_NONE",
	Modem3gppFacilitySim:          "MM_MODEM_3GPP_FACILITY_SIM",
	Modem3gppFacilityFixedDialing: "MM_MODEM_3GPP_FACILITY_FIXED_DIALING",
	Modem3gppFacilityPhSim:        "MM_MODEM_3GPP_FACILITY_PH_SIM",
	Modem3gppFacilityPhFsim:       "MM_MODEM_3GPP_FACILITY_PH_FSIM",
	Modem3gppFacilityNetPers:      "MM_MODEM_3GPP_FACILITY_NET_PERS",
	Modem3gppFacilityNetSubPers:   "MM_MODEM_3GPP_FACILITY_NET_SUB_PERS",
	Modem3gppFacilityProviderPers: "MM_MODEM_3GPP_FACILITY_PROVIDER_PERS",
	Modem3gppFacilityCorpPers:     "MM_MODEM_3GPP_FACILITY_CORP_PERS",
}

func (f Modem3gppFacility) Has(facility Modem3gppFacility) bool {
	return facility != 0 && f&facility == facility
}
func (f Modem3gppFacility) Flags() []Modem3gppFacility { return flags(f, modem3gppFacilityNames) }
func (f Modem3gppFacility) String() string             { return flagString(f, modem3gppFacilityNames) }

var modem3gppRegistrationStateNames = map[Modem3gppRegistrationState]string{
	Modem3gppRegistrationStateIdle:                    "MM_MODEM_3GPP_REGISTRATION_STATE_IDLE",
	Modem3gppRegistrationStateHome:                    "MM_MODEM_3GPP_REGISTRATION_STATE_HOME",
	Modem3gppRegistrationStateSearching:               "MM_MODEM_3GPP_REGISTRATION_STATE_SEARCHING",
	Modem3gppRegistrationStateDenied:                  "MM_MODEM_3GPP_REGISTRATION_STATE_DENIED",
	Modem3gppRegistrationStateUnknown:                 "MM_MODEM_3GPP_REGISTRATION_STATE_UNKNOWN",
	Modem3gppRegistrationStateRoaming:                 "MM_MODEM_3GPP_REGISTRATION_STATE_ROAMING",
	Modem3gppRegistrationStateHomeSmsOnly:             "MM_MODEM_3GPP_REGISTRATION_STATE_HOME_SMS_ONLY",
	Modem3gppRegistrationStateRoamingSmsOnly:          "MM_MODEM_3GPP_REGISTRATION_STATE_ROAMING_SMS_ONLY",
	Modem3gppRegistrationStateEmergencyOnly:           "MM_MODEM_3GPP_REGISTRATION_STATE_EMERGENCY_ONLY",
	Modem3gppRegistrationStateHomeCsfbNotPreferred:    "MM_MODEM_3GPP_REGISTRATION_STATE_HOME_CSFB_NOT_PREFERRED",
	Modem3gppRegistrationStateRoamingCsfbNotPreferred: "MM_MODEM_3GPP_REGISTRATION_STATE_ROAMING_CSFB_NOT_PREFERRED",
	Modem3gppRegistrationStateAttachedRlos:            "MM_MODEM_3GPP_REGISTRATION_STATE_ATTACHED_RLOS",
}

func (s Modem3gppRegistrationState) String() string {
	return enumString(s, modem3gppRegistrationStateNames)
}

var modem3gppSubscriptionStateNames = map[Modem3gppSubscriptionState]string{
	Modem3gppSubscriptionStateUnknown:       "MM_MODEM_3GPP_SUBSCRIPTION_STATE_UNKNOWN",
	Modem3gppSubscriptionStateUnprovisioned: "MM_MODEM_3GPP_SUBSCRIPTION_STATE_UNPROVISIONED",
	Modem3gppSubscriptionStateProvisioned:   "MM_MODEM_3GPP_SUBSCRIPTION_STATE_PROVISIONED",
	Modem3gppSubscriptionStateOutOfData:     "MM_MODEM_3GPP_SUBSCRIPTION_STATE_OUT_OF_DATA",
}

func (s Modem3gppSubscriptionState) String() string {
	return enumString(s, modem3gppSubscriptionStateNames)
}

var modem3gppEpsUeModeOperationNames = map[Modem3gppEpsUeModeOperation]string{
	Modem3gppEpsUeModeOperationUnknown: "MM_MODEM_3GPP_EPS_UE_MODE_OPERATION_UNKNOWN",
	Modem3gppEpsUeModeOperationPs1:     "MM_MODEM_3GPP_EPS_UE_MODE_OPERATION_PS_1",
	Modem3gppEpsUeModeOperationPs2:     "MM_MODEM_3GPP_EPS_UE_MODE_OPERATION_PS_2",
	Modem3gppEpsUeModeOperationCsps1:   "MM_MODEM_3GPP_EPS_UE_MODE_OPERATION_CSPS_1",
	Modem3gppEpsUeModeOperationCsps2:   "MM_MODEM_3GPP_EPS_UE_MODE_OPERATION_CSPS_2",
}

func (m Modem3gppEpsUeModeOperation) String() string {
	return enumString(m, modem3gppEpsUeModeOperationNames)
}

var modem3gppPacketServiceStateNames = map[Modem3gppPacketServiceState]string{
	Modem3gppPacketServiceStateUnknown:  "MM_MODEM_3GPP_PACKET_SERVICE_STATE_UNKNOWN",
	Modem3gppPacketServiceStateDetached: "MM_MODEM_3GPP_PACKET_SERVICE_STATE_DETACHED",
	Modem3gppPacketServiceStateAttached: "MM_MODEM_3GPP_PACKET_SERVICE_STATE_ATTACHED",
}

func (s Modem3gppPacketServiceState) String() string {
	return enumString(s, modem3gppPacketServiceStateNames)
}
