package modem

// Flag sets (bitmasks) and enumerations from ModemManager-enums.h.
// Flag-set types are combined with bitwise OR, enumerations are not.

type BearerAllowedAuth uint32

const (
	BearerAllowedAuthUnknown  BearerAllowedAuth = 0      // Unknown.
	BearerAllowedAuthNone     BearerAllowedAuth = 1 << 0 // None.
	BearerAllowedAuthPap      BearerAllowedAuth = 1 << 1 // PAP.
	BearerAllowedAuthChap     BearerAllowedAuth = 1 << 2 // CHAP.
	BearerAllowedAuthMschap   BearerAllowedAuth = 1 << 3 // MSCHAP.
	BearerAllowedAuthMschapv2 BearerAllowedAuth = 1 << 4 // MSCHAPV2.
	BearerAllowedAuthEap      BearerAllowedAuth = 1 << 5 // EAP.
)

type BearerAccessTypePreference uint32

const (
	BearerAccessTypePreferenceNone          BearerAccessTypePreference = iota // No access type preference, or unknown.
	BearerAccessTypePreference3gppOnly                                        // 3GPP access type only.
	BearerAccessTypePreference3gppPreferred                                   // All access types allowed but 3GPP preferred.
	BearerAccessTypePreferenceNon3gppOnly                                     // Non-3GPP access type only.
)

type BearerApnType uint32

const (
	BearerApnTypeNone       BearerApnType = 0       // Unknown or unsupported.
	BearerApnTypeInitial    BearerApnType = 1 << 0  // APN used for the initial attach procedure.
	BearerApnTypeDefault    BearerApnType = 1 << 1  // Default connection APN providing access to the Internet.
	BearerApnTypeIms        BearerApnType = 1 << 2  // APN providing access to IMS services.
	BearerApnTypeMms        BearerApnType = 1 << 3  // APN providing access to MMS services.
	BearerApnTypeManagement BearerApnType = 1 << 4  // APN providing access to over-the-air device management procedures.
	BearerApnTypeVoice      BearerApnType = 1 << 5  // APN providing access to voice-over-IP services.
	BearerApnTypeEmergency  BearerApnType = 1 << 6  // APN providing access to emergency services.
	BearerApnTypePrivate    BearerApnType = 1 << 7  // APN providing access to private networks.
	BearerApnTypePurchase   BearerApnType = 1 << 8  // APN providing access to over-the-air activation sites. Since 1.20.
	BearerApnTypeVideoShare BearerApnType = 1 << 9  // APN providing access to video sharing service. Since 1.20.
	BearerApnTypeLocal      BearerApnType = 1 << 10 // APN providing access to a local connection with the device. Since 1.20.
	BearerApnTypeApp        BearerApnType = 1 << 12 // APN providing access to certain applications allowed by mobile operators. Since 1.20.
	BearerApnTypeXcap       BearerApnType = 1 << 13 // APN providing access to XCAP provisioning on IMS services. Since 1.20.
	BearerApnTypeTethering  BearerApnType = 1 << 14 // APN providing access to mobile hotspot tethering. Since 1.20.
)

type BearerIPFamily uint32

const (
	BearerIPFamilyNone   BearerIPFamily = 0          // None or unknown.
	BearerIPFamilyIPv4   BearerIPFamily = 1 << 0     // IPv4.
	BearerIPFamilyIPv6   BearerIPFamily = 1 << 1     // IPv6.
	BearerIPFamilyIPv4v6 BearerIPFamily = 1 << 2     // IPv4 and IPv6.
	BearerIPFamilyAny    BearerIPFamily = 0xFFFFFFFF // Mask specifying all IP families.
)

type BearerIPMethod uint32

const (
	BearerIPMethodUnknown BearerIPMethod = iota // Unknown method.
	BearerIPMethodPPP                           // Use PPP to get the address.
	BearerIPMethodStatic                        // Use the provided static IP configuration given by the modem to configure the IP data interface.
	BearerIPMethodDHCP                          // Begin DHCP on the data interface to obtain necessary IP configuration details.
)

type BearerMultiplexSupport uint32

const (
	BearerMultiplexSupportUnknown   BearerMultiplexSupport = iota // Unknown.
	BearerMultiplexSupportNone                                    // No multiplex support should be used.
	BearerMultiplexSupportRequested                               // If available, multiplex support should be used.
	BearerMultiplexSupportRequired                                // Multiplex support must be used or otherwise the connection attempt will fail.
)

type BearerProfileSource uint32

const (
	BearerProfileSourceUnknown  BearerProfileSource = iota // Unknown.
	BearerProfileSourceAdmin                               // Profile created by an enterprise IT admin from the OS.
	BearerProfileSourceUser                                // Profile created by the user.
	BearerProfileSourceOperator                            // Profile created by the operator through OMA-DM or similar.
	BearerProfileSourceModem                               // Profile created by the OEM that was included with the modem firmware.
	BearerProfileSourceDevice                              // Profile created by the OS APN database.
)

type BearerRoamingAllowance uint32

const (
	BearerRoamingAllowanceNone       BearerRoamingAllowance = 0      // No explicit roaming allowance rules.
	BearerRoamingAllowanceHome       BearerRoamingAllowance = 1 << 0 // Home network allowed.
	BearerRoamingAllowancePartner    BearerRoamingAllowance = 1 << 1 // Partner network allowed.
	BearerRoamingAllowanceNonPartner BearerRoamingAllowance = 1 << 2 // Non-partner network allowed.
)

type BearerType uint32

const (
	BearerTypeUnknown       BearerType = iota // Unknown bearer.
	BearerTypeDefault                         // Primary context (2G/3G) or default bearer (4G), defined by the user of the API.
	BearerTypeDefaultAttach                   // The initial default bearer established during LTE attach procedure.
	BearerTypeDedicated                       // Secondary context (2G/3G) or dedicated bearer (4G), defined by the user of the API.
)

type ModemAccessTechnology uint32

const (
	ModemAccessTechnologyUnknown    ModemAccessTechnology = 0          // The access technology used is unknown.
	ModemAccessTechnologyPots       ModemAccessTechnology = 1 << 0     // Analog wireline telephone.
	ModemAccessTechnologyGsm        ModemAccessTechnology = 1 << 1     // GSM.
	ModemAccessTechnologyGsmCompact ModemAccessTechnology = 1 << 2     // Compact GSM.
	ModemAccessTechnologyGprs       ModemAccessTechnology = 1 << 3     // GPRS.
	ModemAccessTechnologyEdge       ModemAccessTechnology = 1 << 4     // EDGE (ETSI 27.007: "GSM w/EGPRS").
	ModemAccessTechnologyUmts       ModemAccessTechnology = 1 << 5     // UMTS (ETSI 27.007: "UTRAN").
	ModemAccessTechnologyHsdpa      ModemAccessTechnology = 1 << 6     // HSDPA (ETSI 27.007: "UTRAN w/HSDPA").
	ModemAccessTechnologyHsupa      ModemAccessTechnology = 1 << 7     // HSUPA (ETSI 27.007: "UTRAN w/HSUPA").
	ModemAccessTechnologyHspa       ModemAccessTechnology = 1 << 8     // HSPA (ETSI 27.007: "UTRAN w/HSDPA and HSUPA").
	ModemAccessTechnologyHspaPlus   ModemAccessTechnology = 1 << 9     // HSPA+ (ETSI 27.007: "UTRAN w/HSPA+").
	ModemAccessTechnology1xrtt      ModemAccessTechnology = 1 << 10    // CDMA2000 1xRTT.
	ModemAccessTechnologyEvdo0      ModemAccessTechnology = 1 << 11    // CDMA2000 EVDO revision 0.
	ModemAccessTechnologyEvdoa      ModemAccessTechnology = 1 << 12    // CDMA2000 EVDO revision A.
	ModemAccessTechnologyEvdob      ModemAccessTechnology = 1 << 13    // CDMA2000 EVDO revision B.
	ModemAccessTechnologyLte        ModemAccessTechnology = 1 << 14    // LTE (ETSI 27.007: "E-UTRAN").
	ModemAccessTechnologyAny        ModemAccessTechnology = 0xFFFFFFFF // Mask specifying all access technologies.
)

type ModemBand uint32

const (
	ModemBandUnknown ModemBand = 0 // Unknown or invalid band.

	// GSM/UMTS bands.
	ModemBandEgsm  ModemBand = 1  // GSM/GPRS/EDGE 900 MHz.
	ModemBandDcs   ModemBand = 2  // GSM/GPRS/EDGE 1800 MHz.
	ModemBandPcs   ModemBand = 3  // GSM/GPRS/EDGE 1900 MHz.
	ModemBandG850  ModemBand = 4  // GSM/GPRS/EDGE 850 MHz.
	ModemBandU2100 ModemBand = 5  // WCDMA 2100 MHz (Class I).
	ModemBandU1800 ModemBand = 6  // WCDMA 3GPP 1800 MHz (Class III).
	ModemBandU17iv ModemBand = 7  // WCDMA 3GPP AWS 1700/2100 MHz (Class IV).
	ModemBandU800  ModemBand = 8  // WCDMA 3GPP UMTS 800 MHz (Class VI).
	ModemBandU850  ModemBand = 9  // WCDMA 3GPP UMTS 850 MHz (Class V).
	ModemBandU900  ModemBand = 10 // WCDMA 3GPP UMTS 900 MHz (Class VIII).
	ModemBandU17ix ModemBand = 11 // WCDMA 3GPP UMTS 1700 MHz (Class IX).
	ModemBandU1900 ModemBand = 12 // WCDMA 3GPP UMTS 1900 MHz (Class II).
	ModemBandU2600 ModemBand = 13 // WCDMA 3GPP UMTS 2600 MHz (Class VII, internal).

	// LTE bands.
	ModemBandEutranI       ModemBand = 31 // E-UTRAN band I.
	ModemBandEutranII      ModemBand = 32 // E-UTRAN band II.
	ModemBandEutranIII     ModemBand = 33 // E-UTRAN band III.
	ModemBandEutranIV      ModemBand = 34 // E-UTRAN band IV.
	ModemBandEutranV       ModemBand = 35 // E-UTRAN band V.
	ModemBandEutranVI      ModemBand = 36 // E-UTRAN band VI.
	ModemBandEutranVII     ModemBand = 37 // E-UTRAN band VII.
	ModemBandEutranVIII    ModemBand = 38 // E-UTRAN band VIII.
	ModemBandEutranIX      ModemBand = 39 // E-UTRAN band IX.
	ModemBandEutranX       ModemBand = 40 // E-UTRAN band X.
	ModemBandEutranXI      ModemBand = 41 // E-UTRAN band XI.
	ModemBandEutranXII     ModemBand = 42 // E-UTRAN band XII.
	ModemBandEutranXIII    ModemBand = 43 // E-UTRAN band XIII.
	ModemBandEutranXIV     ModemBand = 44 // E-UTRAN band XIV.
	ModemBandEutranXVII    ModemBand = 47 // E-UTRAN band XVII.
	ModemBandEutranXVIII   ModemBand = 48 // E-UTRAN band XVIII.
	ModemBandEutranXIX     ModemBand = 49 // E-UTRAN band XIX.
	ModemBandEutranXX      ModemBand = 50 // E-UTRAN band XX.
	ModemBandEutranXXI     ModemBand = 51 // E-UTRAN band XXI.
	ModemBandEutranXXII    ModemBand = 52 // E-UTRAN band XXII.
	ModemBandEutranXXIII   ModemBand = 53 // E-UTRAN band XXIII.
	ModemBandEutranXXIV    ModemBand = 54 // E-UTRAN band XXIV.
	ModemBandEutranXXV     ModemBand = 55 // E-UTRAN band XXV.
	ModemBandEutranXXVI    ModemBand = 56 // E-UTRAN band XXVI.
	ModemBandEutranXXXIII  ModemBand = 63 // E-UTRAN band XXXIII.
	ModemBandEutranXXXIV   ModemBand = 64 // E-UTRAN band XXXIV.
	ModemBandEutranXXXV    ModemBand = 65 // E-UTRAN band XXXV.
	ModemBandEutranXXXVI   ModemBand = 66 // E-UTRAN band XXXVI.
	ModemBandEutranXXXVII  ModemBand = 67 // E-UTRAN band XXXVII.
	ModemBandEutranXXXVIII ModemBand = 68 // E-UTRAN band XXXVIII.
	ModemBandEutranXXXIX   ModemBand = 69 // E-UTRAN band XXXIX.
	ModemBandEutranXL      ModemBand = 70 // E-UTRAN band XL.
	ModemBandEutranXLI     ModemBand = 71 // E-UTRAN band XLI.
	ModemBandEutranXLII    ModemBand = 72 // E-UTRAN band XLII.
	ModemBandEutranXLIII   ModemBand = 73 // E-UTRAN band XLIII.

	// CDMA band classes (3GPP2 C.S0057-C).
	ModemBandCdmaBc0Cellular800   ModemBand = 128 // CDMA Band Class 0 (US Cellular 850MHz).
	ModemBandCdmaBc1Pcs1900       ModemBand = 129 // CDMA Band Class 1 (US PCS 1900MHz).
	ModemBandCdmaBc2Tacs          ModemBand = 130 // CDMA Band Class 2 (UK TACS 900MHz).
	ModemBandCdmaBc3Jtacs         ModemBand = 131 // CDMA Band Class 3 (Japanese TACS).
	ModemBandCdmaBc4KoreanPcs     ModemBand = 132 // CDMA Band Class 4 (Korean PCS).
	ModemBandCdmaBc5Nmt450        ModemBand = 134 // CDMA Band Class 5 (NMT 450MHz).
	ModemBandCdmaBc6Imt2000       ModemBand = 135 // CDMA Band Class 6 (IMT2000 2100MHz).
	ModemBandCdmaBc7Cellular700   ModemBand = 136 // CDMA Band Class 7 (Cellular 700MHz).
	ModemBandCdmaBc81800          ModemBand = 137 // CDMA Band Class 8 (1800MHz).
	ModemBandCdmaBc9900           ModemBand = 138 // CDMA Band Class 9 (900MHz).
	ModemBandCdmaBc10Secondary800 ModemBand = 139 // CDMA Band Class 10 (US Secondary 800).
	ModemBandCdmaBc11Pamr400      ModemBand = 140 // CDMA Band Class 11 (European PAMR 400MHz).
	ModemBandCdmaBc12Pamr800      ModemBand = 141 // CDMA Band Class 12 (PAMR 800MHz).
	ModemBandCdmaBc13Imt20002500  ModemBand = 142 // CDMA Band Class 13 (IMT2000 2500MHz Expansion).
	ModemBandCdmaBc14Pcs21900     ModemBand = 143 // CDMA Band Class 14 (More US PCS 1900MHz).
	ModemBandCdmaBc15Aws          ModemBand = 144 // CDMA Band Class 15 (AWS 1700MHz).
	ModemBandCdmaBc16Us2500       ModemBand = 145 // CDMA Band Class 16 (US 2500MHz).
	ModemBandCdmaBc17UsFlo2500    ModemBand = 146 // CDMA Band Class 17 (US 2500MHz Forward Link Only).
	ModemBandCdmaBc18UsPs700      ModemBand = 147 // CDMA Band Class 18 (US 700MHz Public Safety).
	ModemBandCdmaBc19UsLower700   ModemBand = 148 // CDMA Band Class 19 (US Lower 700MHz).

	ModemBandAny ModemBand = 256 // For certain operations, allow the modem to select a band automatically.
)

type ModemCapability uint32

const (
	ModemCapabilityNone        ModemCapability = 0          // Modem has no capabilities.
	ModemCapabilityPots        ModemCapability = 1 << 0     // Modem supports the analog wired telephone network and has no wireless capabilities.
	ModemCapabilityCdmaEvdo    ModemCapability = 1 << 1     // Modem supports at least one of CDMA 1xRTT, EVDO revision 0, A or B.
	ModemCapabilityGsmUmts     ModemCapability = 1 << 2     // Modem supports at least one of GSM, GPRS, EDGE, UMTS, HSDPA, HSUPA or HSPA+.
	ModemCapabilityLte         ModemCapability = 1 << 3     // Modem has LTE data capability.
	ModemCapabilityLteAdvanced ModemCapability = 1 << 4     // Modem has LTE Advanced data capability.
	ModemCapabilityIridium     ModemCapability = 1 << 5     // Modem has Iridium capabilities.
	ModemCapabilityAny         ModemCapability = 0xFFFFFFFF // Mask specifying all capabilities.
)

type ModemCdmaRmProtocol uint32

const (
	ModemCdmaRmProtocolUnknown            ModemCdmaRmProtocol = iota // Unknown protocol.
	ModemCdmaRmProtocolAsync                                         // Asynchronous data or fax.
	ModemCdmaRmProtocolPacketRelay                                   // Packet data service, Relay Layer Rm interface.
	ModemCdmaRmProtocolPacketNetworkPPP                              // Packet data service, Network Layer Rm interface, PPP.
	ModemCdmaRmProtocolPacketNetworkSLIP                             // Packet data service, Network Layer Rm interface, SLIP.
	ModemCdmaRmProtocolStuIII                                        // STU-III service.
)

type ModemLock uint32

const (
	ModemLockUnknown     ModemLock = iota // Lock reason unknown.
	ModemLockNone                         // Modem is unlocked.
	ModemLockSimPin                       // SIM requires the PIN code.
	ModemLockSimPin2                      // SIM requires the PIN2 code.
	ModemLockSimPuk                       // SIM requires the PUK code.
	ModemLockSimPuk2                      // SIM requires the PUK2 code.
	ModemLockPhSpPin                      // Modem requires the service provider PIN code.
	ModemLockPhSpPuk                      // Modem requires the service provider PUK code.
	ModemLockPhNetPin                     // Modem requires the network PIN code.
	ModemLockPhNetPuk                     // Modem requires the network PUK code.
	ModemLockPhSimPin                     // Modem requires the PIN code.
	ModemLockPhCorpPin                    // Modem requires the corporate PIN code.
	ModemLockPhCorpPuk                    // Modem requires the corporate PUK code.
	ModemLockPhFsimPin                    // Modem requires the PH-FSIM PIN code.
	ModemLockPhFsimPuk                    // Modem requires the PH-FSIM PUK code.
	ModemLockPhNetsubPin                  // Modem requires the network subset PIN code.
	ModemLockPhNetsubPuk                  // Modem requires the network subset PUK code.
)

type ModemMode uint32

const (
	ModemModeNone ModemMode = 0          // None.
	ModemModeCs   ModemMode = 1 << 0     // CSD, GSM, and other circuit-switched technologies.
	ModemMode2g   ModemMode = 1 << 1     // GPRS, EDGE.
	ModemMode3g   ModemMode = 1 << 2     // UMTS, HSxPA.
	ModemMode4g   ModemMode = 1 << 3     // LTE.
	ModemMode5g   ModemMode = 1 << 4     // 5GNR. Since 1.14.
	ModemModeAny  ModemMode = 0xFFFFFFFF // Any mode can be used (only this value allowed for POTS modems).
)

type ModemPortType uint32

const (
	ModemPortTypeUnknown ModemPortType = iota + 1 // Unknown.
	ModemPortTypeNet                              // Net port.
	ModemPortTypeAt                               // AT port.
	ModemPortTypeQcdm                             // QCDM port.
	ModemPortTypeGps                              // GPS port.
	ModemPortTypeQmi                              // QMI port.
	ModemPortTypeMbim                             // MBIM port.
	ModemPortTypeAudio                            // Audio port.
)

type ModemPowerState uint32

const (
	ModemPowerStateUnknown ModemPowerState = iota // Unknown power state.
	ModemPowerStateOff                            // Off.
	ModemPowerStateLow                            // Low-power mode.
	ModemPowerStateOn                             // Full power mode.
)

type ModemState int32

const (
	ModemStateFailed        ModemState = iota - 1 // The modem is unusable.
	ModemStateUnknown                             // State unknown or not reportable.
	ModemStateInitializing                        // The modem is currently being initialized.
	ModemStateLocked                              // The modem needs to be unlocked.
	ModemStateDisabled                            // The modem is not enabled and is powered down.
	ModemStateDisabling                           // The modem is currently transitioning to the @ModemStateDisabled state.
	ModemStateEnabling                            // The modem is currently transitioning to the @ModemStateEnabled state.
	ModemStateEnabled                             // The modem is enabled and powered on but not registered with a network provider and not available for data connections.
	ModemStateSearching                           // The modem is searching for a network provider to register with.
	ModemStateRegistered                          // The modem is registered with a network provider, and data connections and messaging may be available for use.
	ModemStateDisconnecting                       // The modem is disconnecting and deactivating the last active packet data bearer. This state will not be entered if more than one packet data bearer is active and one of the active bearers is deactivated.
	ModemStateConnecting                          // The modem is activating and connecting the first packet data bearer. Subsequent bearer activations when another bearer is already active do not cause this state to be entered.
	ModemStateConnected                           // One or more packet data bearers is active and connected.
)

type ModemStateChangeReason uint32

const (
	ModemStateChangeReasonUnknown        ModemStateChangeReason = iota // Reason unknown or not reportable.
	ModemStateChangeReasonUserRequested                                // State change was requested by an interface user.
	ModemStateChangeReasonSuspend                                      // State change was caused by a system suspend.
	ModemStateChangeReasonFailure                                      // State change was caused by an unrecoverable error.
)

type ModemStateFailedReason uint32

const (
	ModemStateFailedReasonNone       ModemStateFailedReason = iota // No error.
	ModemStateFailedReasonUnknown                                  // Unknown error.
	ModemStateFailedReasonSimMissing                               // SIM is required but missing.
	ModemStateFailedReasonSimError                                 // SIM is available, but unusable (e.g. permanently locked).
)

type Modem3gppFacility uint32

const (
	Modem3gppFacilityNone         Modem3gppFacility = 0      // No facility.
	Modem3gppFacilitySim          Modem3gppFacility = 1 << 0 // SIM lock.
	Modem3gppFacilityFixedDialing Modem3gppFacility = 1 << 1 // Fixed dialing (PIN2) SIM lock.
	Modem3gppFacilityPhSim        Modem3gppFacility = 1 << 2 // Device is locked to a specific SIM.
	Modem3gppFacilityPhFsim       Modem3gppFacility = 1 << 3 // Device is locked to first SIM inserted.
	Modem3gppFacilityNetPers      Modem3gppFacility = 1 << 4 // Network personalization.
	Modem3gppFacilityNetSubPers   Modem3gppFacility = 1 << 5 // Network subset personalization.
	Modem3gppFacilityProviderPers Modem3gppFacility = 1 << 6 // Service provider personalization.
	Modem3gppFacilityCorpPers     Modem3gppFacility = 1 << 7 // Corporate personalization.
)

type Modem3gppRegistrationState uint32

const (
	Modem3gppRegistrationStateIdle                    Modem3gppRegistrationState = iota // Not registered, not searching for new operator to register.
	Modem3gppRegistrationStateHome                                                      // Registered on home network.
	Modem3gppRegistrationStateSearching                                                 // Not registered, searching for new operator to register with.
	Modem3gppRegistrationStateDenied                                                    // Registration denied.
	Modem3gppRegistrationStateUnknown                                                   // Unknown registration status.
	Modem3gppRegistrationStateRoaming                                                   // Registered on a roaming network.
	Modem3gppRegistrationStateHomeSmsOnly                                               // Registered for "SMS only", home network (applicable only when on LTE).
	Modem3gppRegistrationStateRoamingSmsOnly                                            // Registered for "SMS only", roaming network (applicable only when on LTE).
	Modem3gppRegistrationStateEmergencyOnly                                             // Emergency services only.
	Modem3gppRegistrationStateHomeCsfbNotPreferred                                      // Registered for "CSFB not preferred", home network (applicable only when on LTE).
	Modem3gppRegistrationStateRoamingCsfbNotPreferred                                   // Registered for "CSFB not preferred", roaming network (applicable only when on LTE).
	Modem3gppRegistrationStateAttachedRlos                                              // Attached for access to Restricted Local Operator Services (applicable only when on LTE).
)

type Modem3gppSubscriptionState uint32

const (
	Modem3gppSubscriptionStateUnknown       Modem3gppSubscriptionState = iota // The subscription state is unknown.
	Modem3gppSubscriptionStateUnprovisioned                                   // The account is unprovisioned.
	Modem3gppSubscriptionStateProvisioned                                     // The account is provisioned and has data available.
	Modem3gppSubscriptionStateOutOfData                                       // The account is provisioned but there is no data left.
)

type Modem3gppEpsUeModeOperation uint32

const (
	Modem3gppEpsUeModeOperationUnknown Modem3gppEpsUeModeOperation = iota // Unknown or not applicable.
	Modem3gppEpsUeModeOperationPs1                                        // PS mode 1 of operation: EPS only, voice-centric.
	Modem3gppEpsUeModeOperationPs2                                        // PS mode 2 of operation: EPS only, data-centric.
	Modem3gppEpsUeModeOperationCsps1                                      // CS/PS mode 1 of operation: EPS and non-EPS, voice-centric.
	Modem3gppEpsUeModeOperationCsps2                                      // CS/PS mode 2 of operation: EPS and non-EPS, data-centric.
)

type Modem3gppPacketServiceState uint32

const (
	Modem3gppPacketServiceStateUnknown  Modem3gppPacketServiceState = iota // Unknown.
	Modem3gppPacketServiceStateDetached                                    // Detached.
	Modem3gppPacketServiceStateAttached                                    // Attached.
)
